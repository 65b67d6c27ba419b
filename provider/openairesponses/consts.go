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

const (
	// Event types
	eventOutputTextDelta            = "response.output_text.delta"
	eventOutputTextDone             = "response.output_text.done"
	eventFunctionCallArgumentsDelta = "response.function_call_arguments.delta"
	eventFunctionCallArgumentsDone  = "response.function_call_arguments.done"
	eventOutputItemAdded            = "response.output_item.added"
	eventOutputItemDone             = "response.output_item.done"
	eventContentPartAdded           = "response.content_part.added"
	eventContentPartDone            = "response.content_part.done"
	eventCreated                    = "response.created"
	eventInProgress                 = "response.in_progress"
	eventCompleted                  = "response.completed"
	eventError                      = "error"
)

const (
	// Output item types
	itemMessage             = "message"
	itemFunctionCall        = "function_call"
	itemWebSearchCall       = "web_search_call"
	itemFileSearchCall      = "file_search_call"
	itemCodeInterpreterCall = "code_interpreter_call"
	itemImageGenerationCall = "image_generation_call"

	// Content part types
	partOutputText = "output_text"
)
