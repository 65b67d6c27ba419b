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

import "strings"

// ChunkAccumulator assembles a stream of chunks into a final assistant
// message. Text deltas are concatenated in arrival order; tool-call
// argument fragments are buffered per call ID and parsed once the
// stream ends. The accumulator is not safe for concurrent use.
type ChunkAccumulator struct {
	text  strings.Builder
	calls map[string]*pendingCall
	order []string

	inputTokens  int64
	outputTokens int64
	cachedTokens int64
	modelID      string
	responseID   string
}

type pendingCall struct {
	name string
	args strings.Builder
}

// NewChunkAccumulator returns an empty accumulator.
func NewChunkAccumulator() *ChunkAccumulator {
	return &ChunkAccumulator{calls: make(map[string]*pendingCall)}
}

// Add folds one chunk into the accumulated state. Empty chunks are
// consumed and ignored.
func (a *ChunkAccumulator) Add(c *Chunk) {
	if c == nil {
		return
	}
	a.text.WriteString(c.Content)
	for id, tc := range c.ToolCalls {
		pending, ok := a.calls[id]
		if !ok {
			pending = &pendingCall{}
			a.calls[id] = pending
			a.order = append(a.order, id)
		}
		if tc.Name != "" {
			pending.name = tc.Name
		}
		pending.args.WriteString(tc.Arguments)
	}
	if c.InputTokens > 0 {
		a.inputTokens = c.InputTokens
	}
	if c.OutputTokens > 0 {
		a.outputTokens = c.OutputTokens
	}
	if c.CachedTokens > 0 {
		a.cachedTokens = c.CachedTokens
	}
	if c.ModelID != "" {
		a.modelID = c.ModelID
	}
	if c.ResponseID != "" {
		a.responseID = c.ResponseID
	}
}

// Message finalizes the accumulated chunks into an assistant message.
func (a *ChunkAccumulator) Message() *Message {
	var calls ToolCalls
	for _, id := range a.order {
		pending := a.calls[id]
		calls = append(calls, ToolCall{
			ID:        id,
			Name:      pending.name,
			Arguments: ParseToolCallArguments(pending.args.String()),
		})
	}
	return &Message{
		Role:         RoleAssistant,
		Content:      Content{Text: a.text.String()},
		ToolCalls:    calls,
		InputTokens:  a.inputTokens,
		OutputTokens: a.outputTokens,
		CachedTokens: a.cachedTokens,
		ModelID:      a.modelID,
		ResponseID:   a.responseID,
	}
}
