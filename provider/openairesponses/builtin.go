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
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

// WebSearchOptions tunes the vendor-hosted web search tool.
type WebSearchOptions struct {
	SearchContextSize string         `mapstructure:"search_context_size"`
	UserLocation      map[string]any `mapstructure:"user_location"`
}

// WebSearch builds the web search tool spec.
func WebSearch(opts WebSearchOptions) ToolSpec {
	spec := ToolSpec{"type": "web_search_preview"}
	if opts.SearchContextSize != "" {
		spec["search_context_size"] = opts.SearchContextSize
	}
	if len(opts.UserLocation) > 0 {
		spec["user_location"] = opts.UserLocation
	}
	return spec
}

// FileSearchOptions tunes the vendor-hosted file search tool.
type FileSearchOptions struct {
	VectorStoreIDs []string       `mapstructure:"vector_store_ids"`
	MaxNumResults  int            `mapstructure:"max_num_results"`
	RankingOptions map[string]any `mapstructure:"ranking_options"`
}

// FileSearch builds the file search tool spec. At least one vector
// store id is required.
func FileSearch(vectorStoreIDs []string, opts FileSearchOptions) (ToolSpec, error) {
	if len(vectorStoreIDs) == 0 {
		return nil, ErrVectorStoreIDsRequired
	}
	spec := ToolSpec{
		"type":             "file_search",
		"vector_store_ids": vectorStoreIDs,
	}
	if opts.MaxNumResults > 0 {
		spec["max_num_results"] = opts.MaxNumResults
	}
	if len(opts.RankingOptions) > 0 {
		spec["ranking_options"] = opts.RankingOptions
	}
	return spec, nil
}

// CodeInterpreter builds the code interpreter tool spec. An empty
// container selects an auto-provisioned one.
func CodeInterpreter(container string) ToolSpec {
	spec := ToolSpec{"type": "code_interpreter"}
	if container == "" {
		spec["container"] = map[string]any{"type": "auto"}
	} else {
		spec["container"] = container
	}
	return spec
}

// ImageGenerationOptions tunes the vendor-hosted image generation tool.
type ImageGenerationOptions struct {
	PartialImages int    `mapstructure:"partial_images"`
	Size          string `mapstructure:"size"`
	Quality       string `mapstructure:"quality"`
}

// ImageGeneration builds the image generation tool spec.
func ImageGeneration(opts ImageGenerationOptions) ToolSpec {
	spec := ToolSpec{"type": "image_generation"}
	if opts.PartialImages > 0 {
		spec["partial_images"] = opts.PartialImages
	}
	if opts.Size != "" {
		spec["size"] = opts.Size
	}
	if opts.Quality != "" {
		spec["quality"] = opts.Quality
	}
	return spec
}

// MCPOptions tunes a remote MCP server tool.
type MCPOptions struct {
	ServerLabel     string            `mapstructure:"server_label"`
	ServerURL       string            `mapstructure:"server_url"`
	RequireApproval string            `mapstructure:"require_approval"`
	AllowedTools    []string          `mapstructure:"allowed_tools"`
	Headers         map[string]string `mapstructure:"headers"`
}

// MCP builds a remote MCP server tool spec. Label and URL are required;
// approval defaults to "never" so tool calls run unattended.
func MCP(serverLabel, serverURL string, opts MCPOptions) (ToolSpec, error) {
	if serverLabel == "" || serverURL == "" {
		return nil, ErrMCPServerRequired
	}
	approval := opts.RequireApproval
	if approval == "" {
		approval = "never"
	}
	spec := ToolSpec{
		"type":             "mcp",
		"server_label":     serverLabel,
		"server_url":       serverURL,
		"require_approval": approval,
	}
	if len(opts.AllowedTools) > 0 {
		spec["allowed_tools"] = opts.AllowedTools
	}
	if len(opts.Headers) > 0 {
		spec["headers"] = opts.Headers
	}
	return spec, nil
}

// ComputerUseOptions tunes the computer use tool.
type ComputerUseOptions struct {
	DisplayWidth  int    `mapstructure:"display_width"`
	DisplayHeight int    `mapstructure:"display_height"`
	Environment   string `mapstructure:"environment"`
}

// ComputerUse builds the computer use tool spec. Display dimensions are
// required; environment defaults to "browser".
func ComputerUse(opts ComputerUseOptions) (ToolSpec, error) {
	if opts.DisplayWidth <= 0 || opts.DisplayHeight <= 0 {
		return nil, ErrComputerUseDisplayRequired
	}
	env := opts.Environment
	if env == "" {
		env = "browser"
	}
	return ToolSpec{
		"type":           "computer_use_preview",
		"display_width":  opts.DisplayWidth,
		"display_height": opts.DisplayHeight,
		"environment":    env,
	}, nil
}

// WebSearchResult is one hit surfaced by a web search call.
type WebSearchResult struct {
	URL     string `mapstructure:"url"`
	Title   string `mapstructure:"title"`
	Snippet string `mapstructure:"snippet"`
}

// WebSearchCall is a completed web_search_call output item.
type WebSearchCall struct {
	ID      string            `mapstructure:"id"`
	Status  string            `mapstructure:"status"`
	Results []WebSearchResult `mapstructure:"results"`
}

// FileSearchResult is one hit surfaced by a file search call.
type FileSearchResult struct {
	FileID   string  `mapstructure:"file_id"`
	Filename string  `mapstructure:"filename"`
	Score    float64 `mapstructure:"score"`
	Text     string  `mapstructure:"text"`
}

// FileSearchCall is a completed file_search_call output item.
type FileSearchCall struct {
	ID      string             `mapstructure:"id"`
	Status  string             `mapstructure:"status"`
	Queries []string           `mapstructure:"queries"`
	Results []FileSearchResult `mapstructure:"results"`
}

// CodeInterpreterCall is a completed code_interpreter_call output item.
type CodeInterpreterCall struct {
	ID          string           `mapstructure:"id"`
	Status      string           `mapstructure:"status"`
	Code        string           `mapstructure:"code"`
	ContainerID string           `mapstructure:"container_id"`
	Results     []map[string]any `mapstructure:"results"`
}

// ImageGenerationCall is a completed image_generation_call output item.
// Result carries the base64-encoded image.
type ImageGenerationCall struct {
	ID     string `mapstructure:"id"`
	Status string `mapstructure:"status"`
	Result string `mapstructure:"result"`
}

// Citation is an output_text annotation tying a text span to a source.
type Citation struct {
	Type       string `mapstructure:"type"`
	Text       string `mapstructure:"text"`
	URL        string `mapstructure:"url"`
	Title      string `mapstructure:"title"`
	FileID     string `mapstructure:"file_id"`
	StartIndex int    `mapstructure:"start_index"`
	EndIndex   int    `mapstructure:"end_index"`
}

// ParseWebSearchCalls extracts web_search_call items from a raw reply
// body.
func ParseWebSearchCalls(data []byte) ([]WebSearchCall, error) {
	var calls []WebSearchCall
	err := eachOutputItem(data, itemWebSearchCall, func(item map[string]any) error {
		var call WebSearchCall
		if err := mapstructure.Decode(item, &call); err != nil {
			return err
		}
		calls = append(calls, call)
		return nil
	})
	return calls, err
}

// ParseFileSearchCalls extracts file_search_call items from a raw reply
// body.
func ParseFileSearchCalls(data []byte) ([]FileSearchCall, error) {
	var calls []FileSearchCall
	err := eachOutputItem(data, itemFileSearchCall, func(item map[string]any) error {
		var call FileSearchCall
		if err := mapstructure.Decode(item, &call); err != nil {
			return err
		}
		calls = append(calls, call)
		return nil
	})
	return calls, err
}

// ParseCodeInterpreterCalls extracts code_interpreter_call items from a
// raw reply body.
func ParseCodeInterpreterCalls(data []byte) ([]CodeInterpreterCall, error) {
	var calls []CodeInterpreterCall
	err := eachOutputItem(data, itemCodeInterpreterCall, func(item map[string]any) error {
		var call CodeInterpreterCall
		if err := mapstructure.Decode(item, &call); err != nil {
			return err
		}
		calls = append(calls, call)
		return nil
	})
	return calls, err
}

// ParseImageGenerationCalls extracts image_generation_call items from a
// raw reply body.
func ParseImageGenerationCalls(data []byte) ([]ImageGenerationCall, error) {
	var calls []ImageGenerationCall
	err := eachOutputItem(data, itemImageGenerationCall, func(item map[string]any) error {
		var call ImageGenerationCall
		if err := mapstructure.Decode(item, &call); err != nil {
			return err
		}
		calls = append(calls, call)
		return nil
	})
	return calls, err
}

// ExtractCitations collects output_text annotations across every
// message item, in output order.
func ExtractCitations(data []byte) ([]Citation, error) {
	var citations []Citation
	err := eachOutputItem(data, itemMessage, func(item map[string]any) error {
		content, _ := item["content"].([]any)
		for _, p := range content {
			part, ok := p.(map[string]any)
			if !ok || part["type"] != partOutputText {
				continue
			}
			annotations, _ := part["annotations"].([]any)
			for _, a := range annotations {
				var c Citation
				if err := mapstructure.Decode(a, &c); err != nil {
					return err
				}
				citations = append(citations, c)
			}
		}
		return nil
	})
	return citations, err
}

// eachOutputItem walks the body's output array, invoking fn on every
// item of the given type.
func eachOutputItem(data []byte, itemType string, fn func(map[string]any) error) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("openairesponses: invalid response body")
	}
	var walkErr error
	gjson.GetBytes(data, "output").ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() != itemType {
			return true
		}
		m, ok := item.Value().(map[string]any)
		if !ok {
			return true
		}
		if err := fn(m); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	return walkErr
}
