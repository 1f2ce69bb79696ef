/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/proyectorodrigo/polizabot/internal/config"
)

const (
	requestTimeout = 30 * time.Second

	// Pause between the parts of a split reply, for a natural
	// conversation cadence.
	splitDelay = 500 * time.Millisecond

	// Delimiter the agent uses to mark message boundaries in one reply.
	SplitDelimiter = "---"
)

type TextPayload struct {
	Body string `json:"body"`
}

type OutboundMessage struct {
	From string      `json:"from"`
	To   string      `json:"to"`
	Type string      `json:"type"`
	Text TextPayload `json:"text"`
}

type SendResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Client struct {
	client *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	slog.Debug("Initializing YCloud WhatsApp client", "baseURL", cfg.YCloudBaseURL())

	client := resty.New().
		SetBaseURL(cfg.YCloudBaseURL()).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-API-Key", cfg.YCloudAPIKey()).
		SetTimeout(requestTimeout)

	return &Client{client: client}
}

// HTTPClient exposes the underlying transport, used by tests to
// intercept requests.
func (c *Client) HTTPClient() *resty.Client {
	return c.client
}

func (c *Client) SendMessage(ctx context.Context, to, body, from string) (*SendResponse, error) {
	payload := OutboundMessage{
		From: from,
		To:   to,
		Type: "text",
		Text: TextPayload{Body: body},
	}

	slog.Debug("Sending WhatsApp message", "from", from, "to", to, "length", len(body))

	response, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&SendResponse{}).
		Post("/whatsapp/messages")
	if err != nil {
		return nil, fmt.Errorf("ycloud: request failed: %w", err)
	}

	if response.IsError() {
		return nil, fmt.Errorf("ycloud: unexpected status %d: %s", response.StatusCode(), response.String())
	}

	return response.Result().(*SendResponse), nil
}

// SendWithDelay sends the parts sequentially with a pause between them.
// No pause after the last part. Cancellation is honored between parts.
func (c *Client) SendWithDelay(ctx context.Context, to string, messages []string, from string) ([]*SendResponse, error) {
	responses := make([]*SendResponse, 0, len(messages))

	for i, message := range messages {
		response, err := c.SendMessage(ctx, to, message, from)
		if err != nil {
			return responses, err
		}
		responses = append(responses, response)

		if i < len(messages)-1 {
			select {
			case <-time.After(splitDelay):
			case <-ctx.Done():
				return responses, ctx.Err()
			}
		}
	}

	return responses, nil
}

// SendSplitMessages splits a reply on the delimiter and sends the parts
// as separate messages. Returns the parts that were sent.
func (c *Client) SendSplitMessages(ctx context.Context, to, reply, from string) ([]string, error) {
	messages := Split(reply)

	if _, err := c.SendWithDelay(ctx, to, messages, from); err != nil {
		return nil, err
	}

	return messages, nil
}

// Split breaks a reply on the delimiter, dropping empty parts. A reply
// without usable parts is returned whole.
func Split(reply string) []string {
	parts := []string{}
	for _, part := range strings.Split(reply, SplitDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return []string{reply}
	}

	return parts
}
