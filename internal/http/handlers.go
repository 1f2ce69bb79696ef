/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/proyectorodrigo/polizabot/internal/dispatch"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.makeResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "Insurance WhatsApp Agent",
	})
}

// handleWebhookVerification answers the provider's setup probe: a
// numeric challenge is echoed back, anything else gets a ready status.
func (s *Server) handleWebhookVerification(w http.ResponseWriter, r *http.Request) {
	challenge := r.URL.Query().Get("hub.challenge")
	if challenge == "" {
		challenge = r.URL.Query().Get("hub_challenge")
	}

	if value, err := strconv.Atoi(challenge); challenge != "" && err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strconv.Itoa(value)))
		return
	}

	s.makeResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleWebhook accepts an inbound event, hands actionable messages to
// the dispatcher and answers immediately. Only malformed JSON is
// rejected; everything else is acknowledged so the provider does not
// retry what we chose to ignore.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var event WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.makeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.log(r, slog.LevelInfo, "Webhook received", "event", event.Type)

	if event.Type != EventInboundMessage || event.InboundMessage == nil {
		s.makeResponse(w, http.StatusOK, map[string]string{"status": "received"})
		return
	}

	message := event.InboundMessage
	text, ok := textContent(message)
	if !ok || text == "" || message.From == "" {
		s.log(r, slog.LevelDebug, "Ignoring inbound message",
			"type", message.Type, "from", message.From)
		s.makeResponse(w, http.StatusOK, map[string]string{"status": "received"})
		return
	}

	job := dispatch.Job{
		ID:   message.ID,
		From: message.From,
		To:   message.To,
		Text: text,
	}
	if !s.dispatcher.Enqueue(job) {
		s.log(r, slog.LevelWarn, "Dispatch queue full, dropping event",
			"from", message.From, "event", event.ID)
	}

	s.makeResponse(w, http.StatusOK, map[string]string{"status": "received"})
}

func (s *Server) makeResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) makeError(w http.ResponseWriter, status int, message string) {
	s.makeResponse(w, status, map[string]string{"error": message})
}
