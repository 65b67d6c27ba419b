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

// Package openairesponses adapts the lantern conversation model to the
// OpenAI Responses API. It translates message histories into request
// payloads, parses non-streaming replies, dispatches streamed events
// into chunks, and exposes the API's stateful features: conversation
// chaining via previous_response_id, background responses with polling,
// and vendor-hosted built-in tools.
//
// Clients construct a github.com/openai/openai-go/v3 client directly and
// pass it to New:
//
//	client := openai.NewClient(option.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
//	p, err := openairesponses.New(client)
//	if err != nil {
//		log.Fatal(err)
//	}
//	msg, err := p.Complete(ctx, &openairesponses.Request{
//		Model:    "gpt-4o-mini",
//		Messages: []model.Message{model.NewUserMessage("What is 2+2?")},
//	})
//
// Transport concerns such as base URL, authentication, and retries stay
// on the injected client.
package openairesponses
