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

import "errors"

var (
	// ErrClientRequired is returned when an OpenAI client is not provided.
	ErrClientRequired = errors.New("openairesponses: client is required")
	// ErrRequestNil is returned when the provided request is nil.
	ErrRequestNil = errors.New("openairesponses: request is nil")
	// ErrModelRequired is returned when a request names no model.
	ErrModelRequired = errors.New("openairesponses: model is required")
	// ErrNoMessages is returned when the request has no messages to convert.
	ErrNoMessages = errors.New("openairesponses: request has no messages to convert")
	// ErrStreamingUnavailable is returned when streaming is requested but not available.
	ErrStreamingUnavailable = errors.New("openairesponses: streaming unavailable")
	// ErrRawToolMissingType is returned when a raw tool spec has no type discriminator.
	ErrRawToolMissingType = errors.New("openairesponses: raw tool spec missing type")
	// ErrVectorStoreIDsRequired is returned when a file_search tool names no vector stores.
	ErrVectorStoreIDsRequired = errors.New("openairesponses: file_search requires vector_store_ids")
	// ErrMCPServerRequired is returned when an mcp tool lacks server_label or server_url.
	ErrMCPServerRequired = errors.New("openairesponses: mcp requires server_label and server_url")
	// ErrComputerUseDisplayRequired is returned when a computer_use tool lacks display dimensions.
	ErrComputerUseDisplayRequired = errors.New("openairesponses: computer_use requires display_width and display_height")
	// ErrPollTimeout is returned when a background response does not reach a
	// terminal status within the polling budget.
	ErrPollTimeout = errors.New("openairesponses: polling timeout")
)

// VendorError is an error reported inside a response body. Message is the
// vendor-supplied human-readable text; Raw retains the original body for
// diagnostics.
type VendorError struct {
	Message string
	Raw     []byte
}

func (e *VendorError) Error() string {
	return "openairesponses: vendor error: " + e.Message
}

// StreamError is an error-typed event received mid-stream. It aborts
// event processing for that stream.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return "openairesponses: stream error: " + e.Message
}
