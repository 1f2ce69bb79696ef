/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/proyectorodrigo/polizabot/internal/config"
	"github.com/proyectorodrigo/polizabot/internal/controller"
)

var Cmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a token for the conversation monitor",
	Run:   tokenCmd,
}

func init() {
	Cmd.Flags().StringP("agent.config-file", "", "/var/lib/polizabot/polizabot.json", "Config file of the agent")
	Cmd.Flags().DurationP("expires-in", "", 0, "Token lifetime (default 30m)")
}

func tokenCmd(cmd *cobra.Command, args []string) {
	cfgFile, _ := cmd.Flags().GetString("agent.config-file")
	expiresIn, _ := cmd.Flags().GetDuration("expires-in")

	cfg, err := config.NewFromFile(cfgFile)
	cobra.CheckErr(err)

	tokenString, expiresAt, err := controller.MonitorToken(cfg.Secret(), expiresIn)
	cobra.CheckErr(err)

	fmt.Println(tokenString)
	fmt.Printf("Expires: %s\n", expiresAt.Format(time.RFC3339))
}
