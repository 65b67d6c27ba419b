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

// ToolCallChunk is the streaming form of a tool call. Arguments holds a
// raw partial JSON fragment; the accumulator concatenates fragments per
// call ID and parses the final string.
type ToolCallChunk struct {
	ID        string
	Name      string
	Arguments string
}

// Chunk is one incremental unit of a streamed response, corresponding to
// at most one provider event. Status-only events produce an empty chunk:
// every field at its zero value except Role.
type Chunk struct {
	Role      Role
	Content   string
	ToolCalls map[string]ToolCallChunk

	InputTokens  int64
	OutputTokens int64
	CachedTokens int64

	ModelID    string
	ResponseID string
}

// Empty reports whether the chunk carries no observable data.
func (c *Chunk) Empty() bool {
	return c.Content == "" && len(c.ToolCalls) == 0 &&
		c.InputTokens == 0 && c.OutputTokens == 0 && c.CachedTokens == 0 &&
		c.ModelID == "" && c.ResponseID == ""
}
