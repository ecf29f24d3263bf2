// ABOUTME: Export and import commands for backing up cards.
// ABOUTME: Supports JSON documents and directories of markdown files.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ImFeH2/sylvo/internal/export"
	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cards",
	Long:  `Export cards to a JSON document or a directory of markdown files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		out := cmd.OutOrStdout()

		cards := appState.ListCards()

		switch format {
		case "json":
			if outputPath == "" || outputPath == "-" {
				return export.WriteJSON(out, cards, time.Now())
			}
			f, err := os.Create(outputPath) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return err
			}
			if err := export.WriteJSON(f, cards, time.Now()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		case "md":
			if outputPath == "" {
				outputPath = "export"
			}
			if err := export.WriteMarkdownDir(outputPath, cards); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Exported %d cards to %s", len(cards), outputPath)))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import cards",
	Long:  `Import cards from a JSON export, a markdown file, or a directory of markdown files. Every entry becomes a new card.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := export.ReadPath(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import: %w", err)
		}

		n, err := export.Import(appState, entries)
		if err != nil {
			return fmt.Errorf("imported %d of %d cards: %w", n, len(entries), err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Imported %d cards", n)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
