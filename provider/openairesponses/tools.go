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
	"fmt"

	"dario.cat/mergo"
	"github.com/mitchellh/mapstructure"

	"github.com/lanternml/lantern/model"
)

// ToolSpec is a vendor-shaped tool declaration as it appears in the
// request's tools array. Specs stay map-shaped so vendor tool schemas
// that evolve faster than typed clients still round-trip unchanged.
type ToolSpec map[string]any

// ToolFor renders one tool definition into its wire specification.
// Raw specs pass through unchanged, built-in tags expand to their
// canonical shape, and everything else becomes a custom function tool.
// The function is pure: equal definitions render equal specs.
func ToolFor(def model.ToolDefinition) (ToolSpec, error) {
	switch d := def.(type) {
	case model.RawTool:
		if d["type"] == nil {
			return nil, ErrRawToolMissingType
		}
		return ToolSpec(d), nil
	case model.BuiltInTool:
		return builtInSpec(d)
	case model.FunctionTool:
		return functionSpec(d)
	default:
		return nil, fmt.Errorf("openairesponses: unsupported tool definition %T", def)
	}
}

func functionSpec(tool model.FunctionTool) (ToolSpec, error) {
	if tool.Name == "" {
		return nil, fmt.Errorf("openairesponses: function tool missing name")
	}
	schema, err := parametersSchema(tool)
	if err != nil {
		return nil, err
	}
	spec := ToolSpec{
		"type":       "function",
		"name":       tool.Name,
		"parameters": schema,
	}
	if tool.Description != "" {
		spec["description"] = tool.Description
	}
	switch {
	case tool.Strict != nil:
		spec["strict"] = *tool.Strict
	case schema["additionalProperties"] == false:
		spec["strict"] = true
	}
	if len(tool.ProviderParams) > 0 {
		merged := map[string]any(spec)
		if err := mergo.Merge(&merged, tool.ProviderParams, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("openairesponses: merge provider params: %w", err)
		}
		spec = ToolSpec(merged)
	}
	return spec, nil
}

// parametersSchema derives the parameter schema with precedence:
// explicit schema, then the structured parameter list, then the empty
// permissive-by-default object schema.
func parametersSchema(tool model.FunctionTool) (map[string]any, error) {
	if tool.Schema != nil {
		return schemaToMap(tool.Schema)
	}
	if len(tool.Parameters) > 0 {
		return schemaFromParameters(tool.Parameters), nil
	}
	return emptyParametersSchema(), nil
}

func schemaFromParameters(params []model.Parameter) map[string]any {
	properties := map[string]any{}
	required := []string{}
	for _, p := range params {
		prop := map[string]any{"type": p.Type}
		if p.Type == "" {
			prop["type"] = "string"
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

func emptyParametersSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"required":             []string{},
		"additionalProperties": false,
	}
}

// schemaToMap converts any schema value to the map form the wire
// expects, round-tripping through JSON.
func schemaToMap(schema any) (map[string]any, error) {
	if m, ok := schema.(map[string]any); ok {
		return m, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("openairesponses: marshal schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("openairesponses: unmarshal schema: %w", err)
	}
	return m, nil
}

func builtInSpec(tool model.BuiltInTool) (ToolSpec, error) {
	switch tool.Kind {
	case model.BuiltInWebSearch:
		var o WebSearchOptions
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return WebSearch(o), nil
	case model.BuiltInFileSearch:
		var o FileSearchOptions
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return FileSearch(o.VectorStoreIDs, o)
	case model.BuiltInCodeInterpreter:
		var o struct {
			Container string `mapstructure:"container"`
		}
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return CodeInterpreter(o.Container), nil
	case model.BuiltInImageGeneration:
		var o ImageGenerationOptions
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return ImageGeneration(o), nil
	case model.BuiltInMCP:
		var o MCPOptions
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return MCP(o.ServerLabel, o.ServerURL, o)
	case model.BuiltInComputerUse:
		var o ComputerUseOptions
		if err := decodeOptions(tool.Options, &o); err != nil {
			return nil, err
		}
		return ComputerUse(o)
	default:
		return nil, fmt.Errorf("openairesponses: unknown built-in tool %q", tool.Kind)
	}
}

func decodeOptions(options map[string]any, out any) error {
	if len(options) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out})
	if err != nil {
		return err
	}
	if err := dec.Decode(options); err != nil {
		return fmt.Errorf("openairesponses: decode built-in tool options: %w", err)
	}
	return nil
}
