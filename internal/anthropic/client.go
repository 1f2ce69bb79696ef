/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/proyectorodrigo/polizabot/internal/config"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
	requestTimeout = 90 * time.Second
)

type Client struct {
	client *resty.Client
	model  string
}

func NewClient(cfg *config.Config) *Client {
	slog.Debug("Initializing Anthropic client", "model", cfg.ClaudeModel())

	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", cfg.AnthropicAPIKey()).
		SetHeader("anthropic-version", apiVersion).
		SetTimeout(requestTimeout)

	return &Client{
		client: client,
		model:  cfg.ClaudeModel(),
	}
}

func (c *Client) Model() string {
	return c.model
}

// HTTPClient exposes the underlying transport, used by tests to
// intercept requests.
func (c *Client) HTTPClient() *resty.Client {
	return c.client
}

func (c *Client) CreateMessage(ctx context.Context, request *MessagesRequest) (*MessagesResponse, error) {
	if request.Model == "" {
		request.Model = c.model
	}

	response, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&MessagesResponse{}).
		SetError(&errorEnvelope{}).
		Post("/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("anthropic: request failed: %w", err)
	}

	if response.IsError() {
		envelope, ok := response.Error().(*errorEnvelope)
		if ok && envelope.Error.Message != "" {
			return nil, &envelope.Error
		}
		return nil, fmt.Errorf("anthropic: unexpected status %d", response.StatusCode())
	}

	result := response.Result().(*MessagesResponse)

	slog.Debug("Messages API response",
		"id", result.ID,
		"stop_reason", result.StopReason,
		"input_tokens", result.Usage.InputTokens,
		"output_tokens", result.Usage.OutputTokens)

	return result, nil
}
