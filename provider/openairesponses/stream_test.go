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
	"errors"
	"testing"

	"github.com/openai/openai-go/v3/responses"

	"github.com/lanternml/lantern/model"
)

func decodeEvent(t *testing.T, body string) responses.ResponseStreamEventUnion {
	t.Helper()
	var evt responses.ResponseStreamEventUnion
	if err := json.Unmarshal([]byte(body), &evt); err != nil {
		t.Fatalf("decodeEvent: %v", err)
	}
	return evt
}

func TestBuildChunk_TextDelta(t *testing.T) {
	chunk, err := BuildChunk(decodeEvent(t, `{"type":"response.output_text.delta","delta":"Hi"}`))
	if err != nil {
		t.Fatalf("BuildChunk() err = %v", err)
	}
	if chunk.Content != "Hi" || chunk.Role != model.RoleAssistant {
		t.Fatalf("chunk = %+v", chunk)
	}
}

func TestBuildChunk_StatusEventsAreEmpty(t *testing.T) {
	t.Parallel()
	events := []string{
		`{"type":"response.created","response":{"id":"resp_1"}}`,
		`{"type":"response.in_progress","response":{"id":"resp_1"}}`,
		`{"type":"response.output_item.done","item":{"type":"message"}}`,
		`{"type":"response.content_part.added","part":{"type":"output_text"}}`,
		`{"type":"response.content_part.done","part":{"type":"output_text"}}`,
		`{"type":"response.output_text.done","text":"Hi"}`,
		`{"type":"response.function_call_arguments.done","item_id":"fc_1","arguments":"{}"}`,
		`{"type":"response.some_future_event"}`,
	}
	for _, body := range events {
		chunk, err := BuildChunk(decodeEvent(t, body))
		if err != nil {
			t.Fatalf("BuildChunk(%s) err = %v", body, err)
		}
		if !chunk.Empty() {
			t.Fatalf("BuildChunk(%s) = %+v, want empty chunk", body, chunk)
		}
	}
}

func TestBuildChunk_ArgumentsDelta(t *testing.T) {
	t.Run("keyed by call_id", func(t *testing.T) {
		chunk, err := BuildChunk(decodeEvent(t,
			`{"type":"response.function_call_arguments.delta","item_id":"fc_1","call_id":"call-1","delta":"{\"ci"}`))
		if err != nil {
			t.Fatalf("BuildChunk() err = %v", err)
		}
		call, ok := chunk.ToolCalls["call-1"]
		if !ok {
			t.Fatalf("chunk keyed wrong: %+v", chunk.ToolCalls)
		}
		if call.Arguments != `{"ci` {
			t.Fatalf("arguments = %q", call.Arguments)
		}
	})

	t.Run("falls back to item_id", func(t *testing.T) {
		chunk, err := BuildChunk(decodeEvent(t,
			`{"type":"response.function_call_arguments.delta","item_id":"fc_1","delta":"x"}`))
		if err != nil {
			t.Fatalf("BuildChunk() err = %v", err)
		}
		if _, ok := chunk.ToolCalls["fc_1"]; !ok {
			t.Fatalf("chunk keyed wrong: %+v", chunk.ToolCalls)
		}
	})
}

func TestBuildChunk_OutputItemAdded(t *testing.T) {
	chunk, err := BuildChunk(decodeEvent(t,
		`{"type":"response.output_item.added","item":{"type":"function_call","call_id":"call-1","name":"lookup","arguments":""}}`))
	if err != nil {
		t.Fatalf("BuildChunk() err = %v", err)
	}
	call, ok := chunk.ToolCalls["call-1"]
	if !ok {
		t.Fatalf("seed chunk missing call: %+v", chunk.ToolCalls)
	}
	if call.Name != "lookup" || call.Arguments != "" {
		t.Fatalf("seed call = %+v", call)
	}
}

func TestBuildChunk_Completed(t *testing.T) {
	chunk, err := BuildChunk(decodeEvent(t,
		`{"type":"response.completed","response":{"id":"resp_7","model":"gpt-4o","usage":{"input_tokens":10,"output_tokens":5,"input_tokens_details":{"cached_tokens":2}}}}`))
	if err != nil {
		t.Fatalf("BuildChunk() err = %v", err)
	}
	if chunk.InputTokens != 10 || chunk.OutputTokens != 5 || chunk.CachedTokens != 2 {
		t.Fatalf("usage = %d/%d/%d", chunk.InputTokens, chunk.OutputTokens, chunk.CachedTokens)
	}
	if chunk.ResponseID != "resp_7" || chunk.ModelID != "gpt-4o" {
		t.Fatalf("metadata = %q %q", chunk.ResponseID, chunk.ModelID)
	}
}

func TestBuildChunk_ErrorEvent(t *testing.T) {
	_, err := BuildChunk(decodeEvent(t, `{"type":"error","message":"X","code":"server_error"}`))
	var streamErr *StreamError
	if !errors.As(err, &streamErr) {
		t.Fatalf("err = %v, want *StreamError", err)
	}
	if streamErr.Message != "X" {
		t.Fatalf("message = %q, want X", streamErr.Message)
	}
}

func TestStreamAccumulation(t *testing.T) {
	bodies := []string{
		`{"type":"response.created","response":{"id":"resp_1"}}`,
		`{"type":"response.output_item.added","item":{"type":"function_call","call_id":"call-1","name":"lookup","arguments":""}}`,
		`{"type":"response.function_call_arguments.delta","item_id":"fc_1","call_id":"call-1","delta":"{\"city\":"}`,
		`{"type":"response.function_call_arguments.delta","item_id":"fc_1","call_id":"call-1","delta":"\"Paris\"}"}`,
		`{"type":"response.output_text.delta","delta":"Looking"}`,
		`{"type":"response.output_text.delta","delta":" it up"}`,
		`{"type":"response.completed","response":{"id":"resp_1","model":"gpt-4o","usage":{"input_tokens":8,"output_tokens":4,"input_tokens_details":{"cached_tokens":0}}}}`,
	}
	acc := model.NewChunkAccumulator()
	for _, body := range bodies {
		chunk, err := BuildChunk(decodeEvent(t, body))
		if err != nil {
			t.Fatalf("BuildChunk(%s) err = %v", body, err)
		}
		acc.Add(chunk)
	}
	msg := acc.Message()
	if msg.Text() != "Looking it up" {
		t.Fatalf("text = %q", msg.Text())
	}
	if len(msg.ToolCalls) != 1 {
		t.Fatalf("tool call count = %d, want 1", len(msg.ToolCalls))
	}
	call := msg.ToolCalls[0]
	if call.Name != "lookup" || call.Arguments["city"] != "Paris" {
		t.Fatalf("call = %+v", call)
	}
	if msg.ResponseID != "resp_1" || msg.InputTokens != 8 {
		t.Fatalf("metadata = %q %d", msg.ResponseID, msg.InputTokens)
	}
}

func TestParseStreamingError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
		wantOK      bool
	}{
		{
			"server error",
			`{"error":{"type":"server_error","message":"boom"}}`,
			500, "boom", true,
		},
		{
			"rate limit",
			`{"error":{"type":"rate_limit_exceeded","message":"slow down"}}`,
			429, "slow down", true,
		},
		{
			"quota",
			`{"error":{"type":"insufficient_quota","message":"pay up"}}`,
			429, "pay up", true,
		},
		{
			"invalid request",
			`{"error":{"type":"invalid_request_error","message":"bad field"}}`,
			400, "bad field", true,
		},
		{
			"type from code",
			`{"error":{"code":"invalid_api_key","message":"bad key"}}`,
			400, "bad key", true,
		},
		{
			"unknown type",
			`{"error":{"type":"mystery","message":"eh"}}`,
			400, "eh", true,
		},
		{
			"top-level error object",
			`{"type":"error","message":"flat"}`,
			400, "flat", true,
		},
		{
			"not an error",
			`{"id":"resp_1","status":"completed"}`,
			0, "", false,
		},
		{
			"not json",
			`not json`,
			500, "not json", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, ok := ParseStreamingError([]byte(tt.body))
			if status != tt.wantStatus || message != tt.wantMessage || ok != tt.wantOK {
				t.Fatalf("ParseStreamingError() = %d, %q, %v; want %d, %q, %v",
					status, message, ok, tt.wantStatus, tt.wantMessage, tt.wantOK)
			}
		})
	}
}
