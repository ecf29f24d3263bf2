// ABOUTME: Terminal UI formatting for sylvo output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

const (
	// ShortIDLen is how many id characters list views print.
	ShortIDLen = 8
	timeLayout = "2006-01-02 15:04"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatCardListItem(card models.Card) string {
	var sb strings.Builder

	// ID prefix and title
	idPrefix := card.ID.String()[:ShortIDLen]
	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(idPrefix), bold(card.Title)))

	if len(card.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("           %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(card.Tags, ", "))))
	}

	sb.WriteString(fmt.Sprintf("           %s %s\n",
		faint("Updated:"),
		faint(card.Updated().Format(timeLayout))))

	return sb.String()
}

func FormatCardContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatCardHeader(card models.Card) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(card.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(card.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(card.Created().Format(timeLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(card.Updated().Format(timeLayout))))

	if len(card.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tags:"), cyan(strings.Join(card.Tags, ", "))))
	}

	sb.WriteString(Separator())
	return sb.String()
}

func FormatTagList(tags []models.TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func FormatShowMorePrompt(count int) string {
	return faint(fmt.Sprintf("\nShow %d more cards? (y/n) ", count))
}
