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
	"testing"

	"github.com/lanternml/lantern/model"
)

func TestLastResponseID(t *testing.T) {
	t.Parallel()
	withID := func(id string) model.Message {
		msg := model.NewAssistantMessage("ok")
		msg.ResponseID = id
		return msg
	}

	tests := []struct {
		name     string
		messages []model.Message
		want     string
	}{
		{"empty history", nil, ""},
		{
			"no stored responses",
			[]model.Message{model.NewUserMessage("hi"), model.NewAssistantMessage("hello")},
			"",
		},
		{
			"latest wins",
			[]model.Message{withID("resp_1"), model.NewUserMessage("more"), withID("resp_2")},
			"resp_2",
		},
		{
			"skips assistant without id",
			[]model.Message{withID("resp_1"), model.NewUserMessage("more"), model.NewAssistantMessage("hm")},
			"resp_1",
		},
		{
			"ignores non-assistant ids",
			[]model.Message{
				withID("resp_1"),
				{Role: model.RoleUser, ResponseID: "resp_bogus"},
			},
			"resp_1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastResponseID(tt.messages); got != tt.want {
				t.Fatalf("LastResponseID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContinuationRequest(t *testing.T) {
	follow := []model.Message{model.NewUserMessage("and then?")}
	req := ContinuationRequest("gpt-4o", "resp_42", follow)
	if req.PreviousResponseID != "resp_42" || req.Model != "gpt-4o" {
		t.Fatalf("req = %+v", req)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("message count = %d, want 1", len(req.Messages))
	}
}
