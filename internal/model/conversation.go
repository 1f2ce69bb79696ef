/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxHistoryMessages caps the stored history per phone number, 20
// exchanges of human and assistant turns.
const MaxHistoryMessages = 40

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Conversation struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
	PhoneNumber string    `gorm:"not null;unique;uniqueIndex:uidx_conversations_phone_number" json:"phone_number"`
	History     []Message `gorm:"not null;default:'[]';serializer:json" json:"history"`
}

// GetConversationHistory returns the stored history for a phone number.
// An unknown number yields an empty history, not an error.
func (m *Model) GetConversationHistory(phoneNumber string) ([]Message, error) {
	conversation := Conversation{}
	err := m.db.Where(&Conversation{PhoneNumber: phoneNumber}).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []Message{}, nil
		}
		return nil, err
	}

	return conversation.History, nil
}

// SaveConversationHistory upserts the history for a phone number,
// trimming to the newest MaxHistoryMessages entries.
func (m *Model) SaveConversationHistory(phoneNumber string, history []Message) error {
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}

	conversation := Conversation{
		PhoneNumber: phoneNumber,
		History:     history,
	}

	err := m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"history", "updated_at"}),
	}).Create(&conversation).Error
	if err != nil {
		return err
	}

	if len(history) > 0 {
		last := history[len(history)-1]
		m.notifyMessageEvent(MessageEvent{
			PhoneNumber: phoneNumber,
			Role:        last.Role,
			Content:     last.Content,
		})
	}

	return nil
}

func (m *Model) ListConversations(conversations *[]Conversation) (*[]Conversation, error) {
	if err := m.db.Order("updated_at desc").Find(conversations).Error; err != nil {
		return nil, err
	}

	return conversations, nil
}
