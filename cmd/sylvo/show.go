// ABOUTME: Show command for displaying a single card.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a card",
	Long:  `Display a card's full content with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		card, err := appState.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}

		if jsonFlag {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(card)
		}

		fmt.Fprint(out, ui.FormatCardHeader(card))
		content, _ := ui.FormatCardContent(card.Content)
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "print the card as JSON")
	rootCmd.AddCommand(showCmd)
}
