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
	"github.com/openai/openai-go/v3/responses"
	"github.com/tidwall/gjson"

	"github.com/lanternml/lantern/model"
)

// BuildChunk maps one streamed event to exactly one chunk. The mapping
// is stateless and total over event types: structural bookkeeping events
// and unknown future event types produce an empty chunk, so the caller's
// accumulation loop needs no event-type branching. Only error events
// fail.
func BuildChunk(evt responses.ResponseStreamEventUnion) (*model.Chunk, error) {
	switch evt.Type {
	case eventOutputTextDelta:
		delta := evt.AsResponseOutputTextDelta()
		return &model.Chunk{Role: model.RoleAssistant, Content: delta.Delta}, nil

	case eventFunctionCallArgumentsDelta:
		delta := evt.AsResponseFunctionCallArgumentsDelta()
		return &model.Chunk{
			Role:      model.RoleAssistant,
			ToolCalls: streamingToolCall(evt.RawJSON(), delta.ItemID, delta.Delta),
		}, nil

	case eventOutputItemAdded:
		added := evt.AsResponseOutputItemAdded()
		if added.Item.Type == itemFunctionCall {
			// Seed the call with empty arguments; the caller accumulates
			// argument deltas into it.
			return &model.Chunk{
				Role: model.RoleAssistant,
				ToolCalls: map[string]model.ToolCallChunk{
					added.Item.CallID: {
						ID:        added.Item.CallID,
						Name:      added.Item.Name,
						Arguments: "",
					},
				},
			}, nil
		}
		return &model.Chunk{Role: model.RoleAssistant}, nil

	case eventCompleted:
		resp := evt.AsResponseCompleted().Response
		return &model.Chunk{
			Role:         model.RoleAssistant,
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			CachedTokens: resp.Usage.InputTokensDetails.CachedTokens,
			ModelID:      string(resp.Model),
			ResponseID:   resp.ID,
		}, nil

	case eventError:
		msg := evt.Message
		if msg == "" {
			msg = gjson.Get(evt.RawJSON(), "error.message").String()
		}
		if msg == "" {
			msg = "unknown streaming error"
		}
		return nil, &StreamError{Message: msg}

	case eventContentPartAdded, eventContentPartDone,
		eventOutputItemDone, eventOutputTextDone,
		eventFunctionCallArgumentsDone, eventCreated, eventInProgress:
		// Status events carry no observable data.
		return &model.Chunk{Role: model.RoleAssistant}, nil

	default:
		// Unknown event types are a forward-compatible no-op.
		return &model.Chunk{Role: model.RoleAssistant}, nil
	}
}

// streamingToolCall keys an arguments delta by call_id, falling back to
// item_id. No resolvable id yields a nil map.
func streamingToolCall(raw, itemID, delta string) map[string]model.ToolCallChunk {
	id := gjson.Get(raw, "call_id").String()
	if id == "" {
		id = itemID
	}
	if id == "" {
		return nil
	}
	return map[string]model.ToolCallChunk{
		id: {
			ID:        id,
			Name:      gjson.Get(raw, "name").String(),
			Arguments: delta,
		},
	}
}

// ParseStreamingError inspects a non-SSE streaming error body. ok is
// false when the body carries no error marker. The vendor's error type
// (or code) maps onto an HTTP-like status; malformed JSON is treated as
// a 500 with the raw text as the message.
func ParseStreamingError(data []byte) (status int, message string, ok bool) {
	if !gjson.ValidBytes(data) {
		return 500, string(data), true
	}
	root := gjson.ParseBytes(data)
	errObj := root.Get("error")
	if !errObj.Exists() && root.Get("type").String() != "error" {
		return 0, "", false
	}
	if !errObj.Exists() {
		errObj = root
	}
	errType := errObj.Get("type").String()
	if errType == "" {
		errType = errObj.Get("code").String()
	}
	message = errObj.Get("message").String()
	switch errType {
	case "server_error", "internal_error":
		return 500, message, true
	case "rate_limit_exceeded", "insufficient_quota":
		return 429, message, true
	case "invalid_request_error", "invalid_api_key":
		return 400, message, true
	default:
		return 400, message, true
	}
}
