/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package controller

import (
	"log/slog"

	"github.com/proyectorodrigo/polizabot/internal/agent"
	"github.com/proyectorodrigo/polizabot/internal/config"
	"github.com/proyectorodrigo/polizabot/internal/model"
	"github.com/proyectorodrigo/polizabot/internal/whatsapp"
)

type Controller struct {
	config   *config.Config
	model    *model.Model
	agent    *agent.Agent
	whatsapp *whatsapp.Client
}

func New(m *model.Model, a *agent.Agent, w *whatsapp.Client, cfg *config.Config) *Controller {
	slog.Debug("Initializing Controller")

	return &Controller{
		config:   cfg,
		model:    m,
		agent:    a,
		whatsapp: w,
	}
}

func (c *Controller) SubscribeMessageEvents() <-chan model.MessageEvent {
	return c.model.SubscribeMessageEvents()
}
