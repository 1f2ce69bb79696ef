/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package http

// YCloud webhook envelope, reduced to the fields the service acts on.

const EventInboundMessage = "whatsapp.inbound_message.received"

const (
	messageTypeText        = "text"
	messageTypeInteractive = "interactive"

	interactiveTypeListReply   = "list_reply"
	interactiveTypeButtonReply = "button_reply"
)

type InboundText struct {
	Body string `json:"body"`
}

type InteractiveReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type InboundInteractive struct {
	Type        string            `json:"type"`
	ListReply   *InteractiveReply `json:"list_reply,omitempty"`
	ButtonReply *InteractiveReply `json:"button_reply,omitempty"`
}

type InboundMessage struct {
	ID          string              `json:"id"`
	From        string              `json:"from"`
	To          string              `json:"to"`
	Type        string              `json:"type"`
	Text        *InboundText        `json:"text,omitempty"`
	Interactive *InboundInteractive `json:"interactive,omitempty"`
}

type WebhookEvent struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	InboundMessage *InboundMessage `json:"whatsappInboundMessage,omitempty"`
}

// textContent extracts the user's text from a message: the body for
// plain text, the selected option's title (or id) for interactive
// replies. ok is false for message types the service does not handle.
func textContent(message *InboundMessage) (string, bool) {
	switch message.Type {
	case messageTypeText:
		if message.Text == nil {
			return "", false
		}
		return message.Text.Body, true
	case messageTypeInteractive:
		if message.Interactive == nil {
			return "", false
		}

		var reply *InteractiveReply
		switch message.Interactive.Type {
		case interactiveTypeListReply:
			reply = message.Interactive.ListReply
		case interactiveTypeButtonReply:
			reply = message.Interactive.ButtonReply
		}
		if reply == nil {
			return "", false
		}

		if reply.Title != "" {
			return reply.Title, true
		}
		return reply.ID, true
	default:
		return "", false
	}
}
