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

import (
	"encoding/base64"
	"path"
	"strings"
)

// Content is a message body: plain text plus an ordered sequence of
// attachments. Text-only content renders as a bare string on the wire.
type Content struct {
	Text        string
	Attachments []Attachment
}

// TextOnly reports whether the content carries no attachments.
func (c Content) TextOnly() bool { return len(c.Attachments) == 0 }

// AttachmentKind tags the media variant of an attachment.
type AttachmentKind string

const (
	AttachmentImage   AttachmentKind = "image"
	AttachmentPDF     AttachmentKind = "pdf"
	AttachmentAudio   AttachmentKind = "audio"
	AttachmentUnknown AttachmentKind = "unknown"
)

// Attachment is a media part of a message. Either URL or Data is set;
// Filename names the source file and drives format detection for audio.
type Attachment struct {
	Kind     AttachmentKind
	URL      string
	Filename string
	MIME     string
	Data     []byte
}

// IsURL reports whether the attachment references remote content rather
// than inline bytes.
func (a Attachment) IsURL() bool { return a.URL != "" }

// DataURL returns the attachment bytes as a base64 data URL.
func (a Attachment) DataURL() string {
	mime := a.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + a.Base64()
}

// Base64 returns the attachment bytes base64-encoded without a data-URL
// prefix.
func (a Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// BaseFilename returns the last element of the attachment's source name,
// or "file" when no name is known.
func (a Attachment) BaseFilename() string {
	if a.Filename == "" {
		return "file"
	}
	return path.Base(a.Filename)
}

// AudioFormat detects the audio format tag from the source file
// extension. Providers accept only "mp3" and "wav" for inline audio,
// so every other extension falls through to the default "mp3".
func (a Attachment) AudioFormat() string {
	switch strings.ToLower(path.Ext(a.Filename)) {
	case ".mp3":
		return "mp3"
	case ".wav":
		return "wav"
	default:
		return "mp3"
	}
}
