// ABOUTME: List and tags commands for browsing cards.
// ABOUTME: Filters by tag or substring on the host side of get-all.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	Long:  `List all cards, most recently updated first, optionally filtered by tag or search text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tagFlag, _ := cmd.Flags().GetString("tag")
		searchFlag, _ := cmd.Flags().GetString("search")
		limitFlag, _ := cmd.Flags().GetInt("limit")
		jsonFlag, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		cards := filterCards(appState.ListCards(), tagFlag, searchFlag, limitFlag)

		if jsonFlag {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cards)
		}

		if len(cards) == 0 {
			fmt.Fprintln(out, "No cards found.")
			return nil
		}

		for _, card := range cards {
			fmt.Fprint(out, ui.FormatCardListItem(card))
		}
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := models.CountTags(appState.ListCards())
		if len(counts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTagList(counts))
		return nil
	},
}

// filterCards keeps cards carrying tag and containing search in title or
// content (case-insensitive). A limit of zero or less keeps everything.
func filterCards(cards []models.Card, tag, search string, limit int) []models.Card {
	search = strings.ToLower(search)

	filtered := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if tag != "" && !c.HasTag(tag) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Content), search) {
			continue
		}
		filtered = append(filtered, c)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}

func init() {
	listCmd.Flags().StringP("tag", "t", "", "only cards with this tag")
	listCmd.Flags().StringP("search", "s", "", "only cards whose title or content contains this text")
	listCmd.Flags().IntP("limit", "n", 0, "max cards to show (0 for all)")
	listCmd.Flags().Bool("json", false, "print cards as JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tagsCmd)
}
