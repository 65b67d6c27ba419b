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

// Package persist stores conversation turns in a relational database so
// chats can resume across processes. Stored response ids survive the
// round-trip, which keeps server-side conversation chaining working on
// reload.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lanternml/lantern/model"
)

// MessageRecord is one persisted message row.
type MessageRecord struct {
	ID            uint   `gorm:"primaryKey"`
	ChatID        string `gorm:"index;not null"`
	Role          string `gorm:"not null"`
	Content       string
	ToolCallID    string
	ToolCallsJSON string
	InputTokens   int64
	OutputTokens  int64
	CachedTokens  int64
	ModelID       string
	ResponseID    string `gorm:"index"`
	CreatedAt     time.Time
}

// TableName keeps the table name stable across GORM naming strategies.
func (MessageRecord) TableName() string { return "messages" }

// Recorder reads and writes conversation history.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder migrates the schema and returns a recorder bound to db.
func NewRecorder(db *gorm.DB) (*Recorder, error) {
	if err := db.AutoMigrate(&MessageRecord{}); err != nil {
		return nil, fmt.Errorf("persist: migrate: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Save appends one message to a chat.
func (r *Recorder) Save(chatID string, msg *model.Message) error {
	record, err := toRecord(chatID, msg)
	if err != nil {
		return err
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("persist: save message: %w", err)
	}
	return nil
}

// SaveExchange appends a user turn and the assistant reply atomically.
func (r *Recorder) SaveExchange(chatID string, user, assistant *model.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, msg := range []*model.Message{user, assistant} {
			record, err := toRecord(chatID, msg)
			if err != nil {
				return err
			}
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("persist: save message: %w", err)
			}
		}
		return nil
	})
}

// History loads a chat's messages in insertion order.
func (r *Recorder) History(chatID string) ([]model.Message, error) {
	var records []MessageRecord
	if err := r.db.Where("chat_id = ?", chatID).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("persist: load history: %w", err)
	}
	messages := make([]model.Message, 0, len(records))
	for i := range records {
		msg, err := records[i].ToMessage()
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, nil
}

// LastResponseID returns the most recent stored assistant response id
// for a chat, or "" when the chat has none.
func (r *Recorder) LastResponseID(chatID string) (string, error) {
	var record MessageRecord
	err := r.db.
		Where("chat_id = ? AND role = ? AND response_id <> ''", chatID, string(model.RoleAssistant)).
		Order("id desc").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("persist: last response id: %w", err)
	}
	return record.ResponseID, nil
}

// DeleteChat removes every message of a chat.
func (r *Recorder) DeleteChat(chatID string) error {
	if err := r.db.Where("chat_id = ?", chatID).Delete(&MessageRecord{}).Error; err != nil {
		return fmt.Errorf("persist: delete chat: %w", err)
	}
	return nil
}

func toRecord(chatID string, msg *model.Message) (*MessageRecord, error) {
	record := &MessageRecord{
		ChatID:       chatID,
		Role:         string(msg.Role),
		Content:      msg.Text(),
		ToolCallID:   msg.ToolCallID,
		InputTokens:  msg.InputTokens,
		OutputTokens: msg.OutputTokens,
		CachedTokens: msg.CachedTokens,
		ModelID:      msg.ModelID,
		ResponseID:   msg.ResponseID,
	}
	if len(msg.ToolCalls) > 0 {
		data, err := json.Marshal(msg.ToolCalls)
		if err != nil {
			return nil, fmt.Errorf("persist: marshal tool calls: %w", err)
		}
		record.ToolCallsJSON = string(data)
	}
	return record, nil
}

// ToMessage reconstructs the message this row was built from.
func (rec *MessageRecord) ToMessage() (*model.Message, error) {
	msg := &model.Message{
		Role:         model.Role(rec.Role),
		Content:      model.Content{Text: rec.Content},
		ToolCallID:   rec.ToolCallID,
		InputTokens:  rec.InputTokens,
		OutputTokens: rec.OutputTokens,
		CachedTokens: rec.CachedTokens,
		ModelID:      rec.ModelID,
		ResponseID:   rec.ResponseID,
	}
	if rec.ToolCallsJSON != "" {
		if err := json.Unmarshal([]byte(rec.ToolCallsJSON), &msg.ToolCalls); err != nil {
			return nil, fmt.Errorf("persist: unmarshal tool calls: %w", err)
		}
	}
	return msg, nil
}
