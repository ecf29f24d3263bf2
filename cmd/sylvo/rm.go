// ABOUTME: Remove command for deleting cards.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Remove a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		out := cmd.OutOrStdout()

		card, err := appState.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}
		short := card.ID.String()[:ui.ShortIDLen]

		if !force {
			fmt.Fprintf(out, "Delete card %q (%s)? [y/N] ", card.Title, short)
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		ok, err := appState.DeleteCard(card.ID.String())
		if err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}
		if !ok {
			return app.ErrCardNotFound
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted card %s", short)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
