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
	"time"

	"github.com/openai/openai-go/v3/responses"

	"github.com/lanternml/lantern/model"
)

// Status is the lifecycle state of a background response.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusIncomplete Status = "incomplete"
)

// IsPending reports whether the response is still being produced.
func (s Status) IsPending() bool {
	return s == StatusQueued || s == StatusInProgress
}

// IsTerminal reports whether the response will never change again.
// Unknown future statuses count as terminal so pollers cannot spin
// forever.
func (s Status) IsTerminal() bool {
	return !s.IsPending()
}

// Succeeded reports whether the response completed with output.
func (s Status) Succeeded() bool {
	return s == StatusCompleted
}

// Failed reports whether the response terminated without usable output.
func (s Status) Failed() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusIncomplete
}

// Retrieve fetches a stored response by id.
func (p *Provider) Retrieve(ctx context.Context, responseID string) (*responses.Response, error) {
	resp, err := p.client.Responses.Get(ctx, responseID, responses.ResponseGetParams{})
	if err != nil {
		return nil, fmt.Errorf("openairesponses: retrieve %s: %w", responseID, err)
	}
	return resp, nil
}

// Cancel stops an in-flight background response. Cancelling a response
// that already finished is not an error; the terminal state is
// returned.
func (p *Provider) Cancel(ctx context.Context, responseID string) (*responses.Response, error) {
	resp, err := p.client.Responses.Cancel(ctx, responseID)
	if err != nil {
		return nil, fmt.Errorf("openairesponses: cancel %s: %w", responseID, err)
	}
	return resp, nil
}

// Delete removes a stored response server-side.
func (p *Provider) Delete(ctx context.Context, responseID string) error {
	if err := p.client.Responses.Delete(ctx, responseID); err != nil {
		return fmt.Errorf("openairesponses: delete %s: %w", responseID, err)
	}
	return nil
}

// ListInputItems returns the first page of input items recorded for a
// stored response.
func (p *Provider) ListInputItems(ctx context.Context, responseID string) ([]responses.ResponseItemUnion, error) {
	page, err := p.client.Responses.InputItems.List(ctx, responseID, responses.InputItemListParams{})
	if err != nil {
		return nil, fmt.Errorf("openairesponses: list input items %s: %w", responseID, err)
	}
	return page.Data, nil
}

// PollOptions tunes a Poll loop.
type PollOptions struct {
	// Interval between retrievals. Defaults to one second.
	Interval time.Duration

	// Timeout bounds the whole loop; the loop gives up only once the
	// elapsed time exceeds it. Zero means no bound beyond the context.
	Timeout time.Duration

	// Observer, when set, sees every retrieved snapshot including the
	// terminal one.
	Observer func(*responses.Response)
}

// Poll retrieves a background response until it reaches a terminal
// status, then parses it. The loop honors context cancellation between
// retrievals. A response that terminates without completing yields a
// VendorError naming the status.
func (p *Provider) Poll(ctx context.Context, responseID string, opts PollOptions) (*model.Message, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	start := time.Now()
	for {
		resp, err := p.Retrieve(ctx, responseID)
		if err != nil {
			return nil, err
		}
		if opts.Observer != nil {
			opts.Observer(resp)
		}
		status := Status(resp.Status)
		if status.IsTerminal() {
			if !status.Succeeded() {
				return nil, &VendorError{
					Message: fmt.Sprintf("background response %s ended with status %s", responseID, status),
					Raw:     []byte(resp.RawJSON()),
				}
			}
			return ParseResponse(resp)
		}
		if opts.Timeout > 0 && time.Since(start) > opts.Timeout {
			return nil, fmt.Errorf("%w: %s still %s after %s", ErrPollTimeout, responseID, status, opts.Timeout)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
