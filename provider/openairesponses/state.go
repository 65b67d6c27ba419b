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

import "github.com/lanternml/lantern/model"

// LastResponseID returns the response id of the most recent assistant
// message that carries one, scanning backward. It returns "" when no
// message qualifies, which disables server-side chaining for the turn.
func LastResponseID(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		msg := &messages[i]
		if msg.Role == model.RoleAssistant && msg.ResponseID != "" {
			return msg.ResponseID
		}
	}
	return ""
}

// ContinuationRequest builds the minimal follow-up turn that continues
// a stored conversation: only messages after the chained response are
// sent, the rest live server-side under previousID.
func ContinuationRequest(modelID, previousID string, newMessages []model.Message) *Request {
	return &Request{
		Model:              modelID,
		Messages:           newMessages,
		PreviousResponseID: previousID,
	}
}
