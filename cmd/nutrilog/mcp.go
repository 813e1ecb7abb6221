// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "nutrilog": {
        "command": "nutrilog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_food         Log a food entry with macros and micronutrients
  log_exercise     Log calories burned
  log_water        Log water intake
  log_weight       Record today's weight
  delete_food      Delete a food entry by ID
  get_today        Today's aggregated summary
  get_streak       Current and longest streaks
  get_trend        Rolling calorie trend
  toggle_favorite  Toggle a food on the favorites list

AVAILABLE RESOURCES:

  nutrilog://today     Today's nutrition summary
  nutrilog://profile   Profile and derived goals
  nutrilog://trend     Calorie trend with streak data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(app)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
