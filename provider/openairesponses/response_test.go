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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lanternml/lantern/model"
)

func TestParseResponseBody_Text(t *testing.T) {
	body := `{
		"id": "resp_123",
		"model": "gpt-4o-2024-11-20",
		"output": [
			{"type": "message", "content": [
				{"type": "output_text", "text": "Hello"},
				{"type": "output_text", "text": " world"}
			]},
			{"type": "message", "content": [{"type": "output_text", "text": "!"}]}
		],
		"usage": {"input_tokens": 12, "output_tokens": 3, "input_tokens_details": {"cached_tokens": 4}}
	}`
	msg, err := ParseResponseBody([]byte(body))
	if err != nil {
		t.Fatalf("ParseResponseBody() err = %v", err)
	}
	if diff := cmp.Diff("Hello world!", msg.Text()); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
	if msg.Role != model.RoleAssistant {
		t.Fatalf("role = %q, want assistant", msg.Role)
	}
	if msg.InputTokens != 12 || msg.OutputTokens != 3 || msg.CachedTokens != 4 {
		t.Fatalf("usage = %d/%d/%d, want 12/3/4", msg.InputTokens, msg.OutputTokens, msg.CachedTokens)
	}
	if msg.ResponseID != "resp_123" || msg.ModelID != "gpt-4o-2024-11-20" {
		t.Fatalf("metadata = %q %q", msg.ResponseID, msg.ModelID)
	}
}

func TestParseResponseBody_ToolCalls(t *testing.T) {
	body := `{
		"id": "resp_9",
		"output": [
			{"type": "function_call", "call_id": "call-1", "name": "lookup", "arguments": "{\"city\":\"Paris\"}"},
			{"type": "function_call", "call_id": "call-2", "name": "lookup", "arguments": "not json"}
		]
	}`
	msg, err := ParseResponseBody([]byte(body))
	if err != nil {
		t.Fatalf("ParseResponseBody() err = %v", err)
	}
	if len(msg.ToolCalls) != 2 {
		t.Fatalf("tool call count = %d, want 2", len(msg.ToolCalls))
	}
	want := model.ToolCalls{
		{ID: "call-1", Name: "lookup", Arguments: map[string]any{"city": "Paris"}},
		{ID: "call-2", Name: "lookup", Arguments: map[string]any{"raw": "not json"}},
	}
	if diff := cmp.Diff(want, msg.ToolCalls); diff != "" {
		t.Fatalf("tool calls mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResponseBody_VendorError(t *testing.T) {
	body := `{"error": {"message": "model overloaded", "type": "server_error"}}`
	_, err := ParseResponseBody([]byte(body))
	var vendorErr *VendorError
	if !errors.As(err, &vendorErr) {
		t.Fatalf("err = %v, want *VendorError", err)
	}
	if vendorErr.Message != "model overloaded" {
		t.Fatalf("message = %q, want model overloaded", vendorErr.Message)
	}
	if len(vendorErr.Raw) == 0 {
		t.Fatal("raw body not retained")
	}
}

func TestParseResponseBody_Empty(t *testing.T) {
	for _, body := range []string{"", "   ", "\n"} {
		msg, err := ParseResponseBody([]byte(body))
		if msg != nil || err != nil {
			t.Fatalf("ParseResponseBody(%q) = %v, %v, want nil, nil", body, msg, err)
		}
	}
}

func TestParseResponseBody_Malformed(t *testing.T) {
	if _, err := ParseResponseBody([]byte("not json at all")); err == nil {
		t.Fatal("ParseResponseBody() err = nil, want decode error")
	}
}

func TestParseResponse_Nil(t *testing.T) {
	msg, err := ParseResponse(nil)
	if msg != nil || err != nil {
		t.Fatalf("ParseResponse(nil) = %v, %v, want nil, nil", msg, err)
	}
}
