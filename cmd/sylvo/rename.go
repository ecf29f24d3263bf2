// ABOUTME: Rename and retag commands for card metadata.
// ABOUTME: Both replace the field wholesale.

package main

import (
	"fmt"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id-prefix> <title>",
	Short: "Replace a card's title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := appState.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}

		ok, err := appState.RenameCard(card.ID.String(), args[1])
		if err != nil {
			return fmt.Errorf("failed to rename card: %w", err)
		}
		if !ok {
			return app.ErrCardNotFound
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Renamed card %s to %q", card.ID.String()[:ui.ShortIDLen], args[1])))
		return nil
	},
}

var retagCmd = &cobra.Command{
	Use:   "retag <id-prefix> [tag...]",
	Short: "Replace a card's tags",
	Long:  `Replace every tag on a card. With no tags the card becomes untagged.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := appState.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}

		var tags []string
		for _, arg := range args[1:] {
			tags = append(tags, splitTags(arg)...)
		}

		ok, err := appState.RetagCard(card.ID.String(), tags)
		if err != nil {
			return fmt.Errorf("failed to retag card: %w", err)
		}
		if !ok {
			return app.ErrCardNotFound
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Retagged card %s", card.ID.String()[:ui.ShortIDLen])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(retagCmd)
}
