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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3/responses"
	"github.com/tidwall/gjson"

	"github.com/lanternml/lantern/model"
)

// ParseResponse converts a non-streaming Responses API reply into a host
// assistant message. A body-level error fails with a VendorError carrying
// the vendor message and the raw body.
func ParseResponse(resp *responses.Response) (*model.Message, error) {
	if resp == nil {
		return nil, nil
	}
	if resp.Error.Message != "" {
		return nil, &VendorError{Message: resp.Error.Message, Raw: []byte(resp.RawJSON())}
	}
	return &model.Message{
		Role:         model.RoleAssistant,
		Content:      model.Content{Text: extractOutputText(resp.Output)},
		ToolCalls:    extractToolCalls(resp.Output),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
		CachedTokens: resp.Usage.InputTokensDetails.CachedTokens,
		ModelID:      string(resp.Model),
		ResponseID:   resp.ID,
		Raw:          resp,
	}, nil
}

// ParseResponseBody parses a raw reply body. An empty body produces no
// message and no error.
func ParseResponseBody(data []byte) (*model.Message, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}
	if msg := gjson.Get(trimmed, "error.message"); msg.Exists() && msg.String() != "" {
		return nil, &VendorError{Message: msg.String(), Raw: data}
	}
	var resp responses.Response
	if err := json.Unmarshal([]byte(trimmed), &resp); err != nil {
		return nil, fmt.Errorf("openairesponses: decode response: %w", err)
	}
	return ParseResponse(&resp)
}

// extractOutputText concatenates the output_text parts of every message
// item, joined with no separator.
func extractOutputText(output []responses.ResponseOutputItemUnion) string {
	var b strings.Builder
	for _, item := range output {
		if item.Type != itemMessage {
			continue
		}
		for _, part := range item.Content {
			if part.Type == partOutputText {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}

// extractToolCalls collects function_call items in output order. Wire
// arguments that fail JSON parsing are preserved under a "raw" key.
func extractToolCalls(output []responses.ResponseOutputItemUnion) model.ToolCalls {
	var calls model.ToolCalls
	for _, item := range output {
		if item.Type != itemFunctionCall {
			continue
		}
		calls = append(calls, model.ToolCall{
			ID:        item.CallID,
			Name:      item.Name,
			Arguments: model.ParseToolCallArguments(item.Arguments),
		})
	}
	return calls
}
