// ABOUTME: CLI commands for logging and managing exercise entries.
// ABOUTME: Handles add, list, and delete against today's log.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage today's exercise log",
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name> <calories>",
	Aliases: []string{"a"},
	Short:   "Log an exercise entry",
	Long: `Log calories burned for an activity.

Examples:
  nutrilog exercise add "Running" 300
  nutrilog exercise add "Weight training" 180`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		logged := app.LogExercise(models.NewExerciseEntry(args[0], calories))

		color.Green("✓ Logged %s", logged.Name)
		fmt.Printf("  %s %.0f kcal burned\n",
			color.New(color.Faint).Sprint(logged.ID.String()[:8]),
			logged.Calories)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List today's exercise entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises := app.DailyLog().Exercises()
		if len(exercises) == 0 {
			fmt.Println("No exercise logged today.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %s %.0f kcal\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.Timestamp.Format("15:04")),
				padRight(truncate(e.Name, 24), 24),
				e.Calories)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise entry from today's log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveExerciseID(args[0])
		if err != nil {
			return err
		}
		if !app.DeleteExercise(id) {
			return fmt.Errorf("exercise not found: %s", args[0])
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

func resolveExerciseID(s string) (uuid.UUID, error) {
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, e := range app.DailyLog().Exercises() {
		if strings.HasPrefix(e.ID.String(), strings.ToLower(s)) {
			match = e.ID
			found++
		}
	}
	switch found {
	case 1:
		return match, nil
	case 0:
		return uuid.Nil, fmt.Errorf("exercise not found: %s", s)
	default:
		return uuid.Nil, fmt.Errorf("ambiguous ID prefix: %s", s)
	}
}

func init() {
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
