/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package agent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/proyectorodrigo/polizabot/internal/anthropic"
	"github.com/proyectorodrigo/polizabot/internal/model"
)

const (
	maxTokens   = 1024
	temperature = 0.5

	// Context window sent to the model, 10 exchanges.
	maxContextMessages = 20

	// Upper bound on tool round trips per user message.
	maxToolIterations = 5
)

var ErrNoReply = errors.New("agent produced no reply")

type Agent struct {
	llm   *anthropic.Client
	tools *Tools
	model *model.Model
}

func New(llm *anthropic.Client, m *model.Model) *Agent {
	slog.Debug("Initializing insurance agent", "model", llm.Model())

	return &Agent{
		llm:   llm,
		tools: NewTools(m),
		model: m,
	}
}

// ProcessMessage answers one user message: it replays the stored
// conversation, runs the Messages API with the policy tools until the
// model stops asking for them, persists the updated history and returns
// the reply text.
func (a *Agent) ProcessMessage(ctx context.Context, phoneNumber, text string) (string, error) {
	history, err := a.model.GetConversationHistory(phoneNumber)
	if err != nil {
		return "", err
	}

	recent := history
	if len(recent) > maxContextMessages {
		recent = recent[len(recent)-maxContextMessages:]
	}

	messages := make([]anthropic.Message, 0, len(recent)+1)
	for _, entry := range recent {
		role := anthropic.RoleUser
		if entry.Role == "assistant" {
			role = anthropic.RoleAssistant
		}
		messages = append(messages, anthropic.Message{
			Role:    role,
			Content: []anthropic.ContentBlock{anthropic.NewTextBlock(entry.Content)},
		})
	}
	messages = append(messages, anthropic.Message{
		Role:    anthropic.RoleUser,
		Content: []anthropic.ContentBlock{anthropic.NewTextBlock(text)},
	})

	reply := ""
	for range maxToolIterations {
		response, err := a.llm.CreateMessage(ctx, &anthropic.MessagesRequest{
			MaxTokens:   maxTokens,
			Temperature: temperature,
			System:      systemBlocks(),
			Messages:    messages,
			Tools:       a.tools.Definitions(),
		})
		if err != nil {
			return "", err
		}

		messages = append(messages, anthropic.Message{
			Role:    anthropic.RoleAssistant,
			Content: response.Content,
		})

		if response.StopReason != anthropic.StopReasonToolUse {
			reply = response.Text()
			break
		}

		results := []anthropic.ContentBlock{}
		for _, use := range response.ToolUses() {
			slog.Debug("Executing tool", "tool", use.Name, "phoneNumber", phoneNumber)

			output, err := a.tools.Execute(use.Name, use.Input)
			if err != nil {
				slog.Warn("Tool execution failed", "tool", use.Name, "error", err)
				results = append(results, anthropic.NewToolResultBlock(use.ID, err.Error(), true))
				continue
			}
			results = append(results, anthropic.NewToolResultBlock(use.ID, output, false))
		}

		messages = append(messages, anthropic.Message{
			Role:    anthropic.RoleUser,
			Content: results,
		})
	}

	if reply == "" {
		return "", ErrNoReply
	}

	history = append(history,
		model.Message{Role: "user", Content: text},
		model.Message{Role: "assistant", Content: reply},
	)
	if err := a.model.SaveConversationHistory(phoneNumber, history); err != nil {
		slog.Error("Failed to save conversation history", "phoneNumber", phoneNumber, "error", err)
	}

	return reply, nil
}

func systemBlocks() []anthropic.ContentBlock {
	return []anthropic.ContentBlock{
		{
			Type:         anthropic.ContentTypeText,
			Text:         systemPrompt,
			CacheControl: &anthropic.CacheControl{Type: "ephemeral"},
		},
	}
}
