// Copyright 2025 The Lantern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openairesponses

import (
	"regexp"
	"strings"
)

// Pricing is the cost per million tokens, in USD.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
	CachedPerMillion float64
}

// Capability lookups are by model family prefix: a model id matches a
// family when it equals the family name or starts with the family name
// plus a dash. Dated snapshot suffixes (-YYYY-MM-DD) are stripped
// before matching, so "gpt-4o-2024-11-20" resolves like "gpt-4o".
// Longest family wins, so "gpt-4o-mini" is not priced as "gpt-4o".

var responsesModelFamilies = []string{
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"gpt-4.1", "gpt-4o", "gpt-4-turbo", "gpt-4",
	"o1", "o3", "o4",
	"codex",
	"computer-use-preview",
}

var visionModelFamilies = []string{
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"gpt-4.1", "gpt-4o", "gpt-4-turbo",
	"o1", "o3", "o4",
	"computer-use-preview",
}

var reasoningModelFamilies = []string{
	"o1", "o3", "o4",
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"codex",
}

var structuredOutputModelFamilies = []string{
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"gpt-4.1", "gpt-4o",
	"o1", "o3", "o4",
}

var webSearchModelFamilies = []string{
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"gpt-4.1", "gpt-4o",
	"o3", "o4",
}

var codeInterpreterModelFamilies = []string{
	"gpt-5.2", "gpt-5.1", "gpt-5",
	"gpt-4.1", "gpt-4o",
	"o1", "o3", "o4",
}

var contextWindows = map[string]int64{
	"gpt-5.2":              400000,
	"gpt-5.1":              400000,
	"gpt-5":                400000,
	"gpt-4.1":              1047576,
	"gpt-4o":               128000,
	"gpt-4-turbo":          128000,
	"gpt-4":                8192,
	"o1":                   200000,
	"o3":                   200000,
	"o4-mini":              200000,
	"codex":                192000,
	"computer-use-preview": 8192,
}

var maxOutputTokens = map[string]int64{
	"gpt-5.2":              128000,
	"gpt-5.1":              128000,
	"gpt-5":                128000,
	"gpt-4.1":              32768,
	"gpt-4o":               16384,
	"gpt-4-turbo":          4096,
	"gpt-4":                8192,
	"o1":                   100000,
	"o3":                   100000,
	"o4-mini":              100000,
	"codex":                64000,
	"computer-use-preview": 1024,
}

var modelPricing = map[string]Pricing{
	"gpt-5.2":              {1.25, 10.00, 0.125},
	"gpt-5.1":              {1.25, 10.00, 0.125},
	"gpt-5-mini":           {0.25, 2.00, 0.025},
	"gpt-5-nano":           {0.05, 0.40, 0.005},
	"gpt-5":                {1.25, 10.00, 0.125},
	"gpt-4.1-mini":         {0.40, 1.60, 0.10},
	"gpt-4.1-nano":         {0.10, 0.40, 0.025},
	"gpt-4.1":              {2.00, 8.00, 0.50},
	"gpt-4o-mini":          {0.15, 0.60, 0.075},
	"gpt-4o":               {2.50, 10.00, 1.25},
	"gpt-4-turbo":          {10.00, 30.00, 0},
	"gpt-4":                {30.00, 60.00, 0},
	"o1-mini":              {1.10, 4.40, 0.55},
	"o1":                   {15.00, 60.00, 7.50},
	"o3-mini":              {1.10, 4.40, 0.55},
	"o3":                   {10.00, 40.00, 2.50},
	"o4-mini":              {1.10, 4.40, 0.275},
	"codex":                {1.50, 6.00, 0.375},
	"computer-use-preview": {3.00, 12.00, 0},
}

var dateSuffixRE = regexp.MustCompile(`-\d{4}-\d{2}-\d{2}$`)

// normalizeModelID strips a trailing dated snapshot suffix.
func normalizeModelID(modelID string) string {
	return dateSuffixRE.ReplaceAllString(modelID, "")
}

func matchesFamily(modelID, family string) bool {
	return modelID == family || strings.HasPrefix(modelID, family+"-")
}

func inFamilies(modelID string, families []string) bool {
	id := normalizeModelID(modelID)
	for _, family := range families {
		if matchesFamily(id, family) {
			return true
		}
	}
	return false
}

// lookupByFamily resolves a model id against a family-keyed table,
// preferring the longest matching family.
func lookupByFamily[V any](modelID string, table map[string]V) (V, bool) {
	id := normalizeModelID(modelID)
	if v, ok := table[id]; ok {
		return v, true
	}
	var best string
	for family := range table {
		if matchesFamily(id, family) && len(family) > len(best) {
			best = family
		}
	}
	if best != "" {
		return table[best], true
	}
	var zero V
	return zero, false
}

// SupportsResponsesAPI reports whether the model serves the Responses
// endpoint at all.
func SupportsResponsesAPI(modelID string) bool {
	return inFamilies(modelID, responsesModelFamilies)
}

// SupportsVision reports whether the model accepts image input.
func SupportsVision(modelID string) bool {
	return inFamilies(modelID, visionModelFamilies)
}

// ReasoningModel reports whether the model is a reasoning model.
// Reasoning models reject the temperature parameter.
func ReasoningModel(modelID string) bool {
	return inFamilies(modelID, reasoningModelFamilies)
}

// SupportsFunctions reports whether the model accepts caller-defined
// function tools. The computer-use preview model is tool-driven but
// rejects custom functions.
func SupportsFunctions(modelID string) bool {
	return SupportsResponsesAPI(modelID) && !inFamilies(modelID, []string{"computer-use-preview"})
}

// SupportsStructuredOutput reports whether the model honors a strict
// JSON-schema response format.
func SupportsStructuredOutput(modelID string) bool {
	return inFamilies(modelID, structuredOutputModelFamilies)
}

// SupportsWebSearch reports whether the model can drive the hosted web
// search tool.
func SupportsWebSearch(modelID string) bool {
	return inFamilies(modelID, webSearchModelFamilies)
}

// SupportsCodeInterpreter reports whether the model can drive the
// hosted code interpreter tool.
func SupportsCodeInterpreter(modelID string) bool {
	return inFamilies(modelID, codeInterpreterModelFamilies)
}

// ContextWindow returns the model's context window in tokens, with a
// conservative default for unknown models.
func ContextWindow(modelID string) int64 {
	if v, ok := lookupByFamily(modelID, contextWindows); ok {
		return v
	}
	return 128000
}

// MaxOutputTokens returns the model's output token ceiling, with a
// conservative default for unknown models.
func MaxOutputTokens(modelID string) int64 {
	if v, ok := lookupByFamily(modelID, maxOutputTokens); ok {
		return v
	}
	return 16384
}

// PricingFor returns the model's per-million-token prices. Unknown
// models price at zero.
func PricingFor(modelID string) Pricing {
	if p, ok := lookupByFamily(modelID, modelPricing); ok {
		return p
	}
	return Pricing{}
}

// Cost computes the USD cost of a completed exchange. Cached input
// tokens are billed at the cached rate and deducted from the input
// total.
func Cost(modelID string, inputTokens, outputTokens, cachedTokens int64) float64 {
	p := PricingFor(modelID)
	uncached := inputTokens - cachedTokens
	if uncached < 0 {
		uncached = 0
	}
	return float64(uncached)*p.InputPerMillion/1e6 +
		float64(cachedTokens)*p.CachedPerMillion/1e6 +
		float64(outputTokens)*p.OutputPerMillion/1e6
}

// NormalizeTemperature clears the temperature for reasoning models,
// which reject the parameter, and passes it through otherwise.
func NormalizeTemperature(temperature *float64, modelID string) *float64 {
	if temperature == nil {
		return nil
	}
	if ReasoningModel(modelID) {
		return nil
	}
	return temperature
}

// ModelFamily names the family a model id belongs to, or the
// normalized id itself when no family matches.
func ModelFamily(modelID string) string {
	id := normalizeModelID(modelID)
	var best string
	for _, family := range responsesModelFamilies {
		if matchesFamily(id, family) && len(family) > len(best) {
			best = family
		}
	}
	if best != "" {
		return best
	}
	return id
}

// FormatDisplayName renders a model id for humans: "gpt-4o-mini"
// becomes "GPT 4o Mini", "o3-mini" becomes "O3 Mini".
func FormatDisplayName(modelID string) string {
	parts := strings.Split(normalizeModelID(modelID), "-")
	for i, part := range parts {
		switch {
		case part == "gpt":
			parts[i] = "GPT"
		case strings.HasPrefix(part, "o") && len(part) <= 2:
			parts[i] = strings.ToUpper(part)
		case part == "":
		default:
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
