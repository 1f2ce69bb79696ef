/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package run

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/proyectorodrigo/polizabot/internal/manager"
)

var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Run the agent webhook server",
	Run:   runCmd,
}

func init() {
	Cmd.Flags().StringP("server.listen-address", "", "", "Address to listen on for webhook traffic (default 0.0.0.0:$PORT)")
	Cmd.Flags().StringP("server.log-level", "", "info", "Log level (debug, info, warn, error)")
	Cmd.Flags().StringP("server.log-format", "", "structured", "Log format (structured, json)")
	Cmd.Flags().StringP("agent.config-file", "", "/var/lib/polizabot/polizabot.json", "Config file of the agent")

	_ = Cmd.RegisterFlagCompletionFunc("server.log-level", completeServerLogLevel)
	_ = Cmd.RegisterFlagCompletionFunc("server.log-format", completeServerLogFormat)
}

func runCmd(cmd *cobra.Command, args []string) {
	listenAddr, _ := cmd.Flags().GetString("server.listen-address")
	config, _ := cmd.Flags().GetString("agent.config-file")
	logLevel, _ := cmd.Flags().GetString("server.log-level")
	logFormat, _ := cmd.Flags().GetString("server.log-format")

	setLogger(logLevel, logFormat)

	manager, err := manager.New(config)
	cobra.CheckErr(err)

	manager.Run(context.Background(), listenAddr)
}
