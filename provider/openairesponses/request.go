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
	"strings"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"

	"github.com/lanternml/lantern/model"
)

// Request is one chat turn to translate for the Responses API.
type Request struct {
	Model    string
	Messages []model.Message
	Tools    []model.ToolDefinition

	// Temperature is attached only when set. Callers should clear it for
	// reasoning models (see NormalizeTemperature).
	Temperature *float64

	// Schema requests structured output conforming to a JSON schema.
	Schema *OutputSchema

	// Stream selects the streaming transport; it does not change the
	// translated payload.
	Stream bool

	// Background runs the response server-side; retrieve it later via
	// Retrieve or Poll.
	Background bool

	// Store controls server-side storage of the response. The API
	// default is true; the field is attached only when set.
	Store *bool

	Metadata map[string]string

	// PreviousResponseID chains this turn onto a stored response. When
	// empty, the last assistant message in Messages carrying a
	// ResponseID is used.
	PreviousResponseID string
}

// OutputSchema wraps a JSON schema for structured output. Schema may be
// a map[string]any or anything that marshals to a JSON object, such as
// *jsonschema.Schema. Strict precedence: the Strict field when set, then
// a boolean "strict" key inside the schema, then true.
type OutputSchema struct {
	Schema any
	Strict *bool
}

// BuildParams translates a request into Responses API parameters plus
// the request options that attach parts the typed params cannot carry
// (vendor-hosted tool specs are raw JSON so that new tool shapes need no
// client change).
func BuildParams(req *Request) (responses.ResponseNewParams, []option.RequestOption, error) {
	if req == nil {
		return responses.ResponseNewParams{}, nil, ErrRequestNil
	}
	if req.Model == "" {
		return responses.ResponseNewParams{}, nil, ErrModelRequired
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(req.Model),
	}

	var system, rest []model.Message
	for _, msg := range req.Messages {
		if msg.Role == model.RoleSystem {
			system = append(system, msg)
		} else {
			rest = append(rest, msg)
		}
	}

	if inst := joinInstructions(system); inst != "" {
		params.Instructions = param.NewOpt(inst)
	}

	input, err := formatInput(rest)
	if err != nil {
		return responses.ResponseNewParams{}, nil, err
	}
	if len(input) == 0 {
		return responses.ResponseNewParams{}, nil, ErrNoMessages
	}
	params.Input = responses.ResponseNewParamsInputUnion{OfInputItemList: input}

	if req.Temperature != nil {
		params.Temperature = param.NewOpt(*req.Temperature)
	}

	var opts []option.RequestOption
	if len(req.Tools) > 0 {
		specs := make([]ToolSpec, 0, len(req.Tools))
		for _, def := range req.Tools {
			spec, err := ToolFor(def)
			if err != nil {
				return responses.ResponseNewParams{}, nil, err
			}
			specs = append(specs, spec)
		}
		opts = append(opts, option.WithJSONSet("tools", specs))
	}

	if req.Schema != nil {
		format, err := jsonSchemaFormat(req.Schema)
		if err != nil {
			return responses.ResponseNewParams{}, nil, err
		}
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: format,
			},
		}
	}

	if prev := previousResponseID(req); prev != "" {
		params.PreviousResponseID = param.NewOpt(prev)
	}
	if req.Background {
		params.Background = param.NewOpt(true)
	}
	if req.Store != nil {
		params.Store = param.NewOpt(*req.Store)
	}
	if len(req.Metadata) > 0 {
		params.Metadata = shared.Metadata(req.Metadata)
	}

	return params, opts, nil
}

// joinInstructions concatenates system message bodies with a blank-line
// separator.
func joinInstructions(system []model.Message) string {
	texts := make([]string, 0, len(system))
	for _, msg := range system {
		texts = append(texts, msg.Text())
	}
	return strings.Join(texts, "\n\n")
}

// formatInput maps each non-system message to its input items: a tool
// result becomes one function_call_output, an assistant message with
// tool calls becomes an optional message item followed by one
// function_call per call, anything else becomes a single message item.
func formatInput(messages []model.Message) (responses.ResponseInputParam, error) {
	var items responses.ResponseInputParam
	for i := range messages {
		msg := &messages[i]
		switch {
		case msg.ToolCallID != "":
			items = append(items, responses.ResponseInputItemUnionParam{
				OfFunctionCallOutput: &responses.ResponseInputItemFunctionCallOutputParam{
					CallID: msg.ToolCallID,
					Output: responses.ResponseInputItemFunctionCallOutputOutputUnionParam{
						OfString: param.NewOpt(msg.Text()),
					},
					Type: constant.FunctionCallOutput("function_call_output"),
				},
			})
		case len(msg.ToolCalls) > 0:
			if msg.Text() != "" || len(msg.Content.Attachments) > 0 {
				items = append(items, messageItem(msg))
			}
			for _, call := range msg.ToolCalls {
				callParam, err := functionCallItem(call)
				if err != nil {
					return nil, err
				}
				items = append(items, responses.ResponseInputItemUnionParam{OfFunctionCall: callParam})
			}
		default:
			items = append(items, messageItem(msg))
		}
	}
	return items, nil
}

func messageItem(msg *model.Message) responses.ResponseInputItemUnionParam {
	return responses.ResponseInputItemUnionParam{
		OfMessage: &responses.EasyInputMessageParam{
			Role:    formatRole(msg.Role),
			Type:    responses.EasyInputMessageTypeMessage,
			Content: formatContent(msg.Content),
		},
	}
}

func functionCallItem(call model.ToolCall) (*responses.ResponseFunctionToolCallParam, error) {
	callID := call.ID
	if callID == "" {
		callID = "lantern-call-" + uuid.NewString()
	}
	args, err := json.Marshal(call.Arguments)
	if err != nil {
		return nil, fmt.Errorf("openairesponses: marshal tool call args: %w", err)
	}
	return &responses.ResponseFunctionToolCallParam{
		Name:      call.Name,
		CallID:    callID,
		Arguments: string(args),
		Type:      constant.FunctionCall("function_call"),
	}, nil
}

// formatRole maps host roles onto the wire roles. The Responses API has
// no native "tool" role, so tool results render from the user
// perspective; unknown roles pass through unchanged.
func formatRole(role model.Role) responses.EasyInputMessageRole {
	switch role {
	case model.RoleSystem:
		return responses.EasyInputMessageRoleDeveloper
	case model.RoleAssistant:
		return responses.EasyInputMessageRoleAssistant
	case model.RoleTool:
		return responses.EasyInputMessageRoleUser
	default:
		return responses.EasyInputMessageRole(role)
	}
}

// formatContent renders text-only content as a plain string and mixed
// content as an ordered part list: input_text first, then one part per
// attachment.
func formatContent(content model.Content) responses.EasyInputMessageContentUnionParam {
	if content.TextOnly() {
		return responses.EasyInputMessageContentUnionParam{
			OfString: param.NewOpt(content.Text),
		}
	}
	parts := make(responses.ResponseInputMessageContentListParam, 0, len(content.Attachments)+1)
	if content.Text != "" {
		parts = append(parts, responses.ResponseInputContentUnionParam{
			OfInputText: &responses.ResponseInputTextParam{
				Text: content.Text,
				Type: constant.InputText("input_text"),
			},
		})
	}
	for _, att := range content.Attachments {
		parts = append(parts, formatAttachment(att))
	}
	return responses.EasyInputMessageContentUnionParam{
		OfInputItemContentList: parts,
	}
}

func formatAttachment(att model.Attachment) responses.ResponseInputContentUnionParam {
	switch att.Kind {
	case model.AttachmentImage:
		url := att.URL
		if !att.IsURL() {
			url = att.DataURL()
		}
		return responses.ResponseInputContentUnionParam{
			OfInputImage: &responses.ResponseInputImageParam{
				ImageURL: param.NewOpt(url),
				Detail:   responses.ResponseInputImageDetailAuto,
				Type:     constant.InputImage("input_image"),
			},
		}
	case model.AttachmentPDF:
		return responses.ResponseInputContentUnionParam{
			OfInputFile: &responses.ResponseInputFileParam{
				Filename: param.NewOpt(att.BaseFilename()),
				FileData: param.NewOpt(att.DataURL()),
				Type:     constant.InputFile("input_file"),
			},
		}
	case model.AttachmentAudio:
		// The typed content union has no input_audio variant, so the
		// part goes out through the raw-JSON override.
		raw, _ := json.Marshal(map[string]any{
			"type": "input_audio",
			"input_audio": map[string]string{
				"data":   att.Base64(),
				"format": att.AudioFormat(),
			},
		})
		return param.Override[responses.ResponseInputContentUnionParam](json.RawMessage(raw))
	default:
		return responses.ResponseInputContentUnionParam{
			OfInputText: &responses.ResponseInputTextParam{
				Text: fmt.Sprintf("[Unsupported attachment: %s]", att.Kind),
				Type: constant.InputText("input_text"),
			},
		}
	}
}

// jsonSchemaFormat wraps an output schema in the API's text.format
// block. The schema is always named "response"; strict defaults to true
// unless the caller explicitly disables it.
func jsonSchemaFormat(schema *OutputSchema) (*responses.ResponseFormatTextJSONSchemaConfigParam, error) {
	m, err := schemaToMap(schema.Schema)
	if err != nil {
		return nil, err
	}
	strict := true
	if v, ok := m["strict"].(bool); ok {
		strict = v
	}
	if schema.Strict != nil {
		strict = *schema.Strict
	}
	return &responses.ResponseFormatTextJSONSchemaConfigParam{
		Name:   "response",
		Schema: m,
		Strict: param.NewOpt(strict),
		Type:   constant.JSONSchema("json_schema"),
	}, nil
}

func previousResponseID(req *Request) string {
	if req.PreviousResponseID != "" {
		return req.PreviousResponseID
	}
	return LastResponseID(req.Messages)
}
