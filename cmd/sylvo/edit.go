// ABOUTME: Edit command for replacing a card's content.
// ABOUTME: Opens $EDITOR on the current content unless --content or --file is given.

package main

import (
	"fmt"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix>",
	Short: "Edit a card's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := appState.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}

		content, err := readContent(cmd, card.Content)
		if err != nil {
			return err
		}

		if content == card.Content {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
			return nil
		}

		ok, err := appState.RecontentCard(card.ID.String(), content)
		if err != nil {
			return fmt.Errorf("failed to update card: %w", err)
		}
		if !ok {
			return app.ErrCardNotFound
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated card %s", card.ID.String()[:ui.ShortIDLen])))
		return nil
	},
}

func init() {
	editCmd.Flags().String("content", "", "new content (inline)")
	editCmd.Flags().String("file", "", "read new content from file")
	rootCmd.AddCommand(editCmd)
}
