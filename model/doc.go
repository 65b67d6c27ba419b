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

// Package model defines the provider-neutral conversation types that
// providers translate to and from: messages with roles, content and
// attachments, tool calls and tool definitions, and the incremental
// chunks emitted while a response streams. Providers consume these
// types read-only and return fresh values; nothing here is shared
// mutable state.
package model
