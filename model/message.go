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

package model

import "encoding/json"

// Role identifies who authored a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of a conversation. A tool-result message always
// carries ToolCallID; an assistant message may carry zero or more tool
// calls. ResponseID holds the vendor-assigned identifier of the stored
// response that produced an assistant message, so a later request can
// chain onto it.
type Message struct {
	Role       Role
	Content    Content
	ToolCalls  ToolCalls
	ToolCallID string

	InputTokens  int64
	OutputTokens int64
	CachedTokens int64

	ModelID    string
	ResponseID string

	// Raw retains the original provider response for diagnostics.
	Raw any
}

// Text returns the plain-text body of the message.
func (m *Message) Text() string { return m.Content.Text }

// NewSystemMessage returns a system message with the given text.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: Content{Text: text}}
}

// NewUserMessage returns a user message with the given text.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: Content{Text: text}}
}

// NewAssistantMessage returns an assistant message with the given text.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: Content{Text: text}}
}

// NewToolResult returns a tool message carrying the output for a
// previously issued tool call.
func NewToolResult(callID, output string) Message {
	return Message{Role: RoleTool, ToolCallID: callID, Content: Content{Text: output}}
}

// ToolCall is a fully formed request from the model to invoke a tool.
// Arguments is always a map: wire-form argument strings that fail JSON
// parsing are preserved under a single "raw" key instead of being
// dropped.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ToolCalls is an ordered collection of tool calls keyed by ID.
// Order follows the provider's output order.
type ToolCalls []ToolCall

// ByID returns the call with the given ID.
func (tc ToolCalls) ByID(id string) (ToolCall, bool) {
	for _, call := range tc {
		if call.ID == id {
			return call, true
		}
	}
	return ToolCall{}, false
}

// ParseToolCallArguments turns a wire-form argument string into the map
// every ToolCall carries. Empty input yields an empty map; input that is
// not a JSON object is preserved as {"raw": <original string>}.
func ParseToolCallArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"raw": raw}
	}
	if args == nil {
		args = map[string]any{}
	}
	return args
}
