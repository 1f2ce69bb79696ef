/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package controller

import (
	"context"
	"log/slog"
)

// FallbackMessage is sent when the agent cannot produce a reply.
const FallbackMessage = "Lo siento, hubo un error procesando tu mensaje. Por favor intenta de nuevo."

// ProcessMessage runs the agent on one inbound message and sends the
// reply back over WhatsApp. from is the user's number, to the business
// number the user wrote to. Failures are answered with the fallback
// message; they never propagate to the webhook response.
func (c *Controller) ProcessMessage(ctx context.Context, from, to, text string) error {
	slog.Info("Processing inbound message", "from", from, "length", len(text))

	reply, err := c.agent.ProcessMessage(ctx, from, text)
	if err != nil {
		slog.Error("Agent failed", "from", from, "error", err)

		if _, sendErr := c.whatsapp.SendMessage(ctx, from, FallbackMessage, to); sendErr != nil {
			slog.Error("Failed to send fallback message", "from", from, "error", sendErr)
		}
		return err
	}

	parts, err := c.whatsapp.SendSplitMessages(ctx, from, reply, to)
	if err != nil {
		slog.Error("Failed to send reply", "from", from, "error", err)
		return err
	}

	slog.Info("Reply sent", "to", from, "parts", len(parts))

	return nil
}
