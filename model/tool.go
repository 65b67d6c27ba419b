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

import "github.com/invopop/jsonschema"

// ToolDefinition is implemented by the three shapes a caller can hand a
// provider: a custom function tool, a reference to a provider-hosted
// built-in tool, or a raw provider-shaped specification passed through
// unchanged.
type ToolDefinition interface {
	toolDefinition()
}

// Parameter declares one argument of a function tool when the caller
// does not supply a full JSON schema.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// FunctionTool is a caller-defined tool the model may invoke. The
// parameter shape is taken from Schema when set, otherwise derived from
// Parameters, otherwise an empty permissive-by-default object schema.
// ProviderParams are deep-merged on top of the rendered tool
// specification, override winning on conflicting keys.
type FunctionTool struct {
	Name        string
	Description string
	Parameters  []Parameter
	Schema      *jsonschema.Schema
	Strict      *bool
	// ProviderParams carries provider-specific overrides for the
	// rendered specification.
	ProviderParams map[string]any
}

func (FunctionTool) toolDefinition() {}

// BuiltInKind names a provider-hosted capability invoked by tag rather
// than by a caller-supplied function schema.
type BuiltInKind string

const (
	BuiltInWebSearch       BuiltInKind = "web_search"
	BuiltInFileSearch      BuiltInKind = "file_search"
	BuiltInCodeInterpreter BuiltInKind = "code_interpreter"
	BuiltInImageGeneration BuiltInKind = "image_generation"
	BuiltInMCP             BuiltInKind = "mcp"
	BuiltInComputerUse     BuiltInKind = "computer_use"
)

// BuiltInTool references a provider-hosted tool. Options parameterize
// the tool and are validated by the provider's constructors.
type BuiltInTool struct {
	Kind    BuiltInKind
	Options map[string]any
}

func (BuiltInTool) toolDefinition() {}

// RawTool is a pre-built provider-shaped tool specification. It must
// carry the provider's "type" discriminator and is attached to requests
// unchanged.
type RawTool map[string]any

func (RawTool) toolDefinition() {}
