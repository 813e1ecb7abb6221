// ABOUTME: CLI commands for exporting and importing tracker data.
// ABOUTME: Supports JSON and YAML export, validated field-by-field import.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/backup"
)

var (
	backupOutput string
	backupDryRun bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import tracker data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export every stored entity as one document.

FORMATS:

  json   Canonical backup format (suitable for restore)
  yaml   Human-readable export

EXAMPLES:

  nutrilog backup export json               # Print to stdout
  nutrilog backup export json -o backup.json
  nutrilog backup export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := app.Backup().Export()

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = backup.MarshalJSON(doc)
		case "yaml":
			data, err = backup.MarshalYAML(doc)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if backupOutput != "" {
			if err := os.WriteFile(backupOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", backupOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON backup",
	Long: `Import a JSON backup. The document is validated first; fields
present in the document overwrite the stored state field by field, so a
partial backup only touches what it contains.

Use --dry-run to validate without writing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		doc, err := backup.Parse(raw)
		if err != nil {
			return err
		}

		result := backup.Validate(doc)
		for _, w := range result.Warnings {
			color.Yellow("! %s", w)
		}
		if !result.Valid {
			for _, e := range result.Errors {
				color.Red("✗ %s", e)
			}
			return fmt.Errorf("%s", result.Message)
		}

		if backupDryRun {
			color.Green("✓ %s", result.Message)
			return nil
		}

		imported := app.Backup().Import(doc)
		if !imported.Success {
			return fmt.Errorf("%s", imported.Message)
		}

		color.Green("✓ %s", imported.Message)
		for _, field := range imported.Imported {
			fmt.Printf("  imported %s\n", field)
		}
		for _, field := range imported.Skipped {
			color.Yellow("  skipped %s", field)
		}
		return nil
	},
}

func init() {
	backupExportCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "write to file instead of stdout")
	backupImportCmd.Flags().BoolVar(&backupDryRun, "dry-run", false, "validate without importing")

	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
