/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package model

import "gorm.io/gorm"

// MessageEvent is published whenever a conversation turn is persisted.
// The live monitor subscribes to these.
type MessageEvent struct {
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Content     string `json:"content"`
}

type Model struct {
	db                 *gorm.DB
	messageEventChan   chan MessageEvent
	messageSubscribers []chan MessageEvent
}

func New(db *gorm.DB) *Model {
	return &Model{
		db:                 db,
		messageEventChan:   make(chan MessageEvent, 100),
		messageSubscribers: make([]chan MessageEvent, 0),
	}
}

func (m *Model) SubscribeMessageEvents() <-chan MessageEvent {
	ch := make(chan MessageEvent, 10)
	m.messageSubscribers = append(m.messageSubscribers, ch)
	return ch
}

func (m *Model) notifyMessageEvent(event MessageEvent) {
	select {
	case m.messageEventChan <- event:
	default:
	}

	for _, sub := range m.messageSubscribers {
		select {
		case sub <- event:
		default:
		}
	}
}
