// ABOUTME: Root Cobra command for nutrilog CLI.
// ABOUTME: Handles store and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/config"
	"github.com/nutrilog-app/nutrilog/internal/notify"
	"github.com/nutrilog-app/nutrilog/internal/store"
	"github.com/nutrilog-app/nutrilog/internal/tracker"
)

var (
	flagDataDir string
	flagVerbose bool

	appStore *store.Store
	app      *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "nutrilog",
	Short: "Personal nutrition and calorie tracker",
	Long: `Nutrilog is a CLI tool for tracking daily nutrition and fitness.

WHAT IT TRACKS:

  Food        calories, protein, carbs, fat, plus 20 micronutrients
  Exercise    calories burned per activity
  Hydration   water intake against a daily goal
  Body        weight history with a 90-day log
  Habits      daily logging streaks

QUICK START:

  $ nutrilog profile set --age 30 --gender male --feet 5 --inches 10 \
      --weight 180 --activity moderate --goal lose
  $ nutrilog food add "Oatmeal" 320 --protein 12 --carbs 54 --fat 6
  $ nutrilog exercise add "Running" 300
  $ nutrilog today                      # Today's summary
  $ nutrilog history trend              # 7-day calorie graph data

GOALS:

  Setting a profile derives a daily calorie target (Mifflin-St Jeor),
  macro gram goals, and personalized micronutrient targets. Each can
  also be set directly:

  $ nutrilog goal target 2200
  $ nutrilog goal macros --preset high_protein
  $ nutrilog goal micros --set iron=18

BACKUP:

  $ nutrilog backup export json -o backup.json
  $ nutrilog backup import backup.json

MCP INTEGRATION:

  Run 'nutrilog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutrilog": { "command": "nutrilog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored in a local Badger database at
  ~/.local/share/nutrilog/db. A day rolls over on the first access
  after midnight; finished days move into the rolling history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagVerbose {
			cfg.Verbose = true
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		app = tracker.New(appStore, clock.System{}, notify.NewHub())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override data directory")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable store logging")
}
