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

package persist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lanternml/lantern/model"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	rec, err := NewRecorder(db)
	if err != nil {
		t.Fatalf("NewRecorder() err = %v", err)
	}
	return rec
}

func TestRecorder_RoundTrip(t *testing.T) {
	rec := newTestRecorder(t)

	user := model.NewUserMessage("weather in Paris?")
	assistant := model.NewAssistantMessage("Checking.")
	assistant.ToolCalls = model.ToolCalls{
		{ID: "call-1", Name: "lookup", Arguments: map[string]any{"city": "Paris"}},
	}
	assistant.ResponseID = "resp_1"
	assistant.ModelID = "gpt-4o"
	assistant.InputTokens = 10
	assistant.OutputTokens = 4

	if err := rec.SaveExchange("chat-1", &user, &assistant); err != nil {
		t.Fatalf("SaveExchange() err = %v", err)
	}

	history, err := rec.History("chat-1")
	if err != nil {
		t.Fatalf("History() err = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Role != model.RoleUser || history[0].Text() != "weather in Paris?" {
		t.Fatalf("user turn = %+v", history[0])
	}
	got := history[1]
	if got.ResponseID != "resp_1" || got.InputTokens != 10 {
		t.Fatalf("assistant metadata = %+v", got)
	}
	if diff := cmp.Diff(assistant.ToolCalls, got.ToolCalls); diff != "" {
		t.Fatalf("tool calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_LastResponseID(t *testing.T) {
	rec := newTestRecorder(t)

	if id, err := rec.LastResponseID("chat-1"); err != nil || id != "" {
		t.Fatalf("LastResponseID(empty) = %q, %v", id, err)
	}

	first := model.NewAssistantMessage("one")
	first.ResponseID = "resp_1"
	second := model.NewAssistantMessage("two")
	second.ResponseID = "resp_2"
	plain := model.NewAssistantMessage("no id")
	for _, msg := range []*model.Message{&first, &second, &plain} {
		if err := rec.Save("chat-1", msg); err != nil {
			t.Fatalf("Save() err = %v", err)
		}
	}

	id, err := rec.LastResponseID("chat-1")
	if err != nil {
		t.Fatalf("LastResponseID() err = %v", err)
	}
	if id != "resp_2" {
		t.Fatalf("LastResponseID() = %q, want resp_2", id)
	}
}

func TestRecorder_DeleteChat(t *testing.T) {
	rec := newTestRecorder(t)

	msg := model.NewUserMessage("hi")
	if err := rec.Save("chat-1", &msg); err != nil {
		t.Fatalf("Save() err = %v", err)
	}
	other := model.NewUserMessage("other chat")
	if err := rec.Save("chat-2", &other); err != nil {
		t.Fatalf("Save() err = %v", err)
	}

	if err := rec.DeleteChat("chat-1"); err != nil {
		t.Fatalf("DeleteChat() err = %v", err)
	}
	history, err := rec.History("chat-1")
	if err != nil {
		t.Fatalf("History() err = %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history length = %d after delete, want 0", len(history))
	}
	remaining, err := rec.History("chat-2")
	if err != nil || len(remaining) != 1 {
		t.Fatalf("other chat affected: %v %v", remaining, err)
	}
}
