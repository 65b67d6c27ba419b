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
	"sort"

	"github.com/tidwall/gjson"
)

// ModelInfo describes one catalog entry, assembled from the capability
// tables.
type ModelInfo struct {
	ID              string
	DisplayName     string
	Family          string
	ContextWindow   int64
	MaxOutputTokens int64
	Pricing         Pricing
	Vision          bool
	Reasoning       bool
}

// knownModelIDs seeds the static catalog for clients that cannot reach
// the vendor's model list endpoint.
var knownModelIDs = []string{
	"gpt-5.2",
	"gpt-5.1",
	"gpt-5",
	"gpt-5-mini",
	"gpt-5-nano",
	"gpt-4.1",
	"gpt-4.1-mini",
	"gpt-4.1-nano",
	"gpt-4o",
	"gpt-4o-mini",
	"o1",
	"o3",
	"o3-mini",
	"o4-mini",
}

// Info assembles the catalog entry for a model id, known or not.
func Info(modelID string) ModelInfo {
	return ModelInfo{
		ID:              modelID,
		DisplayName:     FormatDisplayName(modelID),
		Family:          ModelFamily(modelID),
		ContextWindow:   ContextWindow(modelID),
		MaxOutputTokens: MaxOutputTokens(modelID),
		Pricing:         PricingFor(modelID),
		Vision:          SupportsVision(modelID),
		Reasoning:       ReasoningModel(modelID),
	}
}

// KnownModels returns the static catalog, sorted by id.
func KnownModels() []ModelInfo {
	infos := make([]ModelInfo, 0, len(knownModelIDs))
	for _, id := range knownModelIDs {
		infos = append(infos, Info(id))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// ParseModelList reads a vendor /models listing body and returns
// catalog entries for the models that serve the Responses endpoint,
// sorted by id. Entries the endpoint cannot serve are dropped.
func ParseModelList(data []byte) []ModelInfo {
	var infos []ModelInfo
	gjson.GetBytes(data, "data").ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id").String()
		if id != "" && SupportsResponsesAPI(id) {
			infos = append(infos, Info(id))
		}
		return true
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
