/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package manager

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/proyectorodrigo/polizabot/internal/agent"
	"github.com/proyectorodrigo/polizabot/internal/anthropic"
	"github.com/proyectorodrigo/polizabot/internal/config"
	"github.com/proyectorodrigo/polizabot/internal/controller"
	"github.com/proyectorodrigo/polizabot/internal/database"
	"github.com/proyectorodrigo/polizabot/internal/dispatch"
	httpserver "github.com/proyectorodrigo/polizabot/internal/http"
	"github.com/proyectorodrigo/polizabot/internal/model"
	"github.com/proyectorodrigo/polizabot/internal/profiler"
	"github.com/proyectorodrigo/polizabot/internal/version"
	"github.com/proyectorodrigo/polizabot/internal/whatsapp"
)

const shutdownTimeout = 30 * time.Second

type Manager struct {
	config     *config.Config
	database   *database.Database
	model      *model.Model
	controller *controller.Controller
	dispatcher *dispatch.Dispatcher
	profiler   profiler.Profiler
}

func New(cfgFile string) (*Manager, error) {
	slog.Debug("Initializing Manager", "cfgFile", cfgFile)

	cfg, err := config.NewFromFile(cfgFile)
	if err != nil {
		return nil, err
	}

	prof := profiler.New(cfg, false)
	if err := prof.Start(); err != nil {
		slog.Warn("Failed to start Pyroscope profiler", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	m := model.New(db.Connection())

	llm := anthropic.NewClient(cfg)
	wa := whatsapp.NewClient(cfg)
	ctrl := controller.New(m, agent.New(llm, m), wa, cfg)

	return &Manager{
		config:     cfg,
		database:   db,
		model:      m,
		controller: ctrl,
		dispatcher: dispatch.New(ctrl.ProcessMessage),
		profiler:   prof,
	}, nil
}

func (m *Manager) Run(ctx context.Context, listenAddr string) {
	if listenAddr == "" {
		listenAddr = fmt.Sprintf("0.0.0.0:%d", m.config.Port())
	}

	slog.Debug("Running Manager", "listenAddr", listenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	slog.Info("Starting Insurance WhatsApp Agent", "release", version.Release(), "commit", version.Commit())
	slog.Info("Listening on " + listenAddr)

	m.dispatcher.Start()

	server := httpserver.NewServer(listenAddr, m.controller, m.dispatcher, m.config)
	if err := server.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}

	select {
	case <-stop:
	case <-ctx.Done():
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("Failed to stop HTTP server", "error", err)
	}
	if err := m.dispatcher.Stop(shutdownCtx); err != nil {
		slog.Error("Failed to drain dispatcher", "error", err)
	}
	m.profiler.Stop()

	slog.Info("Server stopped")
}
