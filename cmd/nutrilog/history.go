// ABOUTME: CLI commands for historical views.
// ABOUTME: Renders the 7-day trend and the 30-day calendar status.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/history"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show historical summaries",
}

var historyTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the 7-day calorie trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.Trend()

		faint := color.New(color.Faint)
		for i := range s.Days {
			line := fmt.Sprintf("%s %s  eaten %5.0f  burned %5.0f",
				faint.Sprint(s.Days[i]), padRight(s.Labels[i], 3),
				s.Eaten[i], s.Burned[i])
			if s.Target[i] > 0 {
				line += fmt.Sprintf("  target %5.0f", s.Target[i])
			}
			fmt.Println(line)
		}
		return nil
	},
}

var historyCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the 30-day status calendar",
	Long: `Show each of the last 30 days classified against its target:
under, perfect (within 50 kcal), or over. Days without data are omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := app.MonthStatus()
		if len(all) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		days := make([]string, 0, len(all))
		for day := range all {
			days = append(days, day)
		}
		sort.Strings(days)

		for _, day := range days {
			switch all[day] {
			case history.StatusPerfect:
				fmt.Printf("%s %s\n", day, color.GreenString("perfect"))
			case history.StatusUnder:
				fmt.Printf("%s %s\n", day, color.CyanString("under"))
			case history.StatusOver:
				fmt.Printf("%s %s\n", day, color.RedString("over"))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyTrendCmd, historyCalendarCmd)
	rootCmd.AddCommand(historyCmd)
}
