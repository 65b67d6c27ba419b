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
	"math"
	"testing"
)

func TestFamilyMatching(t *testing.T) {
	t.Parallel()
	tests := []struct {
		modelID string
		want    bool
	}{
		{"gpt-4o", true},
		{"gpt-4o-mini", true},
		{"gpt-4o-2024-11-20", true},
		{"gpt-5.1", true},
		{"o3-mini", true},
		{"davinci-002", false},
		{"gpt-40", false}, // prefix without the dash boundary
		{"", false},
	}
	for _, tt := range tests {
		if got := SupportsResponsesAPI(tt.modelID); got != tt.want {
			t.Fatalf("SupportsResponsesAPI(%q) = %v, want %v", tt.modelID, got, tt.want)
		}
	}
}

func TestReasoningModel(t *testing.T) {
	t.Parallel()
	if !ReasoningModel("o3-mini") || !ReasoningModel("gpt-5.1") {
		t.Fatal("reasoning families not detected")
	}
	if ReasoningModel("gpt-4o") {
		t.Fatal("gpt-4o flagged as reasoning model")
	}
}

func TestFeaturePredicates(t *testing.T) {
	t.Parallel()
	if !SupportsFunctions("gpt-4o") || SupportsFunctions("computer-use-preview") {
		t.Fatal("function support misclassified")
	}
	if !SupportsStructuredOutput("gpt-4o-2024-11-20") || SupportsStructuredOutput("gpt-4-turbo") {
		t.Fatal("structured output support misclassified")
	}
	if !SupportsWebSearch("gpt-4o") || SupportsWebSearch("gpt-4") {
		t.Fatal("web search support misclassified")
	}
	if !SupportsCodeInterpreter("o3") || SupportsCodeInterpreter("computer-use-preview") {
		t.Fatal("code interpreter support misclassified")
	}
	if !SupportsVision("gpt-4o") || SupportsVision("gpt-4") {
		t.Fatal("vision support misclassified")
	}
}

func TestContextWindowAndOutputTokens(t *testing.T) {
	t.Parallel()
	if got := ContextWindow("gpt-4o-2024-11-20"); got != 128000 {
		t.Fatalf("ContextWindow(gpt-4o-2024-11-20) = %d, want 128000", got)
	}
	if got := ContextWindow("gpt-5.1-codex"); got != 400000 {
		t.Fatalf("ContextWindow(gpt-5.1-codex) = %d, want 400000", got)
	}
	if got := ContextWindow("totally-new-model"); got != 128000 {
		t.Fatalf("ContextWindow(unknown) = %d, want default 128000", got)
	}
	if got := MaxOutputTokens("gpt-4o"); got != 16384 {
		t.Fatalf("MaxOutputTokens(gpt-4o) = %d, want 16384", got)
	}
	if got := MaxOutputTokens("totally-new-model"); got != 16384 {
		t.Fatalf("MaxOutputTokens(unknown) = %d, want default 16384", got)
	}
}

func TestPricingLongestFamilyWins(t *testing.T) {
	t.Parallel()
	mini := PricingFor("gpt-4o-mini-2024-07-18")
	if mini.InputPerMillion != 0.15 {
		t.Fatalf("gpt-4o-mini input price = %v, want 0.15", mini.InputPerMillion)
	}
	full := PricingFor("gpt-4o")
	if full.InputPerMillion != 2.50 {
		t.Fatalf("gpt-4o input price = %v, want 2.50", full.InputPerMillion)
	}
	unknown := PricingFor("davinci-002")
	if unknown != (Pricing{}) {
		t.Fatalf("unknown model priced: %+v", unknown)
	}
}

func TestCost(t *testing.T) {
	t.Parallel()
	// gpt-4o: 2.50 in, 10.00 out, 1.25 cached per million.
	got := Cost("gpt-4o", 1_000_000, 100_000, 200_000)
	want := 0.8*2.50 + 0.2*1.25 + 0.1*10.00
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Cost() = %v, want %v", got, want)
	}
	if Cost("gpt-4o", 0, 0, 0) != 0 {
		t.Fatal("zero usage should cost zero")
	}
}

func TestNormalizeTemperature(t *testing.T) {
	t.Parallel()
	temp := 0.7
	if got := NormalizeTemperature(&temp, "o3-mini"); got != nil {
		t.Fatalf("reasoning model temperature = %v, want nil", *got)
	}
	if got := NormalizeTemperature(&temp, "gpt-4o"); got == nil || *got != 0.7 {
		t.Fatal("non-reasoning model temperature dropped")
	}
	if got := NormalizeTemperature(nil, "gpt-4o"); got != nil {
		t.Fatal("nil temperature should stay nil")
	}
}

func TestModelFamily(t *testing.T) {
	t.Parallel()
	tests := []struct {
		modelID string
		want    string
	}{
		{"gpt-4o-mini-2024-07-18", "gpt-4o"},
		{"gpt-4-turbo", "gpt-4-turbo"},
		{"o3-mini", "o3"},
		{"davinci-002", "davinci-002"},
	}
	for _, tt := range tests {
		if got := ModelFamily(tt.modelID); got != tt.want {
			t.Fatalf("ModelFamily(%q) = %q, want %q", tt.modelID, got, tt.want)
		}
	}
}

func TestFormatDisplayName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		modelID string
		want    string
	}{
		{"gpt-4o-mini", "GPT 4o Mini"},
		{"o3-mini", "O3 Mini"},
		{"gpt-4o-2024-11-20", "GPT 4o"},
	}
	for _, tt := range tests {
		if got := FormatDisplayName(tt.modelID); got != tt.want {
			t.Fatalf("FormatDisplayName(%q) = %q, want %q", tt.modelID, got, tt.want)
		}
	}
}
