package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openexhibits/exhibits-admin/internal/agent"
	"github.com/openexhibits/exhibits-admin/internal/api"
	"github.com/openexhibits/exhibits-admin/internal/auth"
	"github.com/openexhibits/exhibits-admin/internal/config"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing read-only exhibit browsing tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		token := auth.Token()
		if token == "" {
			return fmt.Errorf("not signed in; run `exhibits-admin login` first")
		}

		// Set version from the cmd package variable.
		agent.Version = Version

		fmt.Fprintf(os.Stderr, "exhibits-admin MCP server started on stdio (backend=%s)\n", cfg.BackendURL)

		srv := agent.NewServer(api.New(cfg.BackendURL).WithToken(token))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
}
