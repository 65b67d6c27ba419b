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
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lanternml/lantern/model"
)

// Provider talks to the OpenAI Responses API on behalf of the host
// application.
type Provider struct {
	client *openai.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the structured logger. The default discards nothing
// and writes through slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

// New wraps a configured OpenAI client. The client must have been built
// with at least one option (an API key at minimum).
func New(client openai.Client, opts ...Option) (*Provider, error) {
	if len(client.Options) == 0 {
		return nil, ErrClientRequired
	}
	p := &Provider{
		client: &client,
		logger: slog.Default(),
		tracer: otel.Tracer("github.com/lanternml/lantern/provider/openairesponses"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Complete performs one non-streaming turn: translate, call, parse.
func (p *Provider) Complete(ctx context.Context, req *Request) (*model.Message, error) {
	params, reqOpts, err := BuildParams(req)
	if err != nil {
		return nil, err
	}
	ctx, span := p.tracer.Start(ctx, "openairesponses.Complete",
		trace.WithAttributes(attribute.String("llm.model", req.Model)))
	defer span.End()

	resp, err := p.client.Responses.New(ctx, params, reqOpts...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("openairesponses: call failed: %w", err)
	}
	msg, err := ParseResponse(resp)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	p.logger.DebugContext(ctx, "responses call completed",
		"model", msg.ModelID,
		"response_id", msg.ResponseID,
		"input_tokens", msg.InputTokens,
		"output_tokens", msg.OutputTokens)
	return msg, nil
}

// Stream performs one streaming turn, yielding a chunk per meaningful
// event. Iteration stops at the first error; callers typically feed the
// chunks into a model.ChunkAccumulator.
func (p *Provider) Stream(ctx context.Context, req *Request) iter.Seq2[*model.Chunk, error] {
	params, reqOpts, err := BuildParams(req)
	if err != nil {
		return singleErrorSequence(err)
	}
	return func(yield func(*model.Chunk, error) bool) {
		ctx, span := p.tracer.Start(ctx, "openairesponses.Stream",
			trace.WithAttributes(attribute.String("llm.model", req.Model)))
		defer span.End()

		stream := p.client.Responses.NewStreaming(ctx, params, reqOpts...)
		if stream == nil {
			yield(nil, ErrStreamingUnavailable)
			return
		}
		defer stream.Close()

		for stream.Next() {
			chunk, err := BuildChunk(stream.Current())
			if err != nil {
				span.RecordError(err)
				yield(nil, err)
				return
			}
			if chunk.Empty() {
				continue
			}
			if !yield(chunk, nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			span.RecordError(err)
			yield(nil, fmt.Errorf("openairesponses: stream failed: %w", err))
		}
	}
}

// CompleteWithStream runs a streaming turn but returns the accumulated
// final message, for callers that want streaming transport without
// incremental consumption.
func (p *Provider) CompleteWithStream(ctx context.Context, req *Request) (*model.Message, error) {
	acc := model.NewChunkAccumulator()
	for chunk, err := range p.Stream(ctx, req) {
		if err != nil {
			return nil, err
		}
		acc.Add(chunk)
	}
	return acc.Message(), nil
}

func singleErrorSequence(err error) iter.Seq2[*model.Chunk, error] {
	return func(yield func(*model.Chunk, error) bool) {
		yield(nil, err)
	}
}
