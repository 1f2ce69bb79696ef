/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/proyectorodrigo/polizabot/internal/config"
	"github.com/proyectorodrigo/polizabot/internal/controller"
	"github.com/proyectorodrigo/polizabot/internal/dispatch"
)

type Server struct {
	controller *controller.Controller
	config     *config.Config
	dispatcher *dispatch.Dispatcher
	server     *http.Server
}

func NewServer(addr string, ctrl *controller.Controller, dispatcher *dispatch.Dispatcher, cfg *config.Config) *Server {
	slog.Debug("Initializing HTTP Server", "addr", addr)

	mux := http.NewServeMux()

	s := &Server{
		controller: ctrl,
		config:     cfg,
		dispatcher: dispatcher,
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
			// Write timeout covers the webhook path only; replies are
			// produced by the dispatcher, not the handler.
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	mux.Handle("GET /{$}", s.securityHeaders(http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /webhook", s.securityHeaders(http.HandlerFunc(s.handleWebhookVerification)))
	mux.Handle("POST /webhook", s.securityHeaders(http.HandlerFunc(s.handleWebhook)))
	mux.Handle("GET /monitor", s.securityHeaders(s.authMiddleware(http.HandlerFunc(s.handleMonitor))))

	return s
}

func (s *Server) Start() error {
	listen, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(listen); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
