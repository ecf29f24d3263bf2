// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates card display and markdown rendering.

package ui

import (
	"strings"
	"testing"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestFormatCardListItem(t *testing.T) {
	card := models.NewCard("Test Card", []string{"work", "important"}, "")

	output := FormatCardListItem(card.Clone())

	if !strings.Contains(output, card.ID.String()[:ShortIDLen]) {
		t.Error("expected output to contain ID prefix")
	}
	if !strings.Contains(output, "Test Card") {
		t.Error("expected output to contain title")
	}
	if !strings.Contains(output, "important, work") {
		t.Errorf("expected sorted tags in output, got %q", output)
	}
}

func TestFormatCardListItemNoTags(t *testing.T) {
	output := FormatCardListItem(models.NewCard("Bare", nil, "").Clone())

	if strings.Contains(output, "Tags:") {
		t.Error("expected no tags line for untagged card")
	}
}

func TestFormatCardContent(t *testing.T) {
	content := "# Hello\n\nThis is **bold** text."

	output, err := FormatCardContent(content)
	if err != nil {
		t.Fatalf("failed to format content: %v", err)
	}

	if output == "" {
		t.Error("expected non-empty output")
	}
}

func TestFormatCardHeader(t *testing.T) {
	card := models.NewCard("Header", []string{"a"}, "")

	output := FormatCardHeader(card.Clone())

	for _, want := range []string{"Header", card.ID.String(), "Created:", "Updated:", "Tags:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected header to contain %q", want)
		}
	}
}

func TestFormatTagList(t *testing.T) {
	tags := []models.TagCount{
		{Name: "work", Count: 5},
		{Name: "personal", Count: 3},
	}

	output := FormatTagList(tags)

	if !strings.Contains(output, "work") {
		t.Error("expected output to contain 'work'")
	}
	if !strings.Contains(output, "(5)") {
		t.Error("expected output to contain count '5'")
	}
}

func TestStatusLines(t *testing.T) {
	if got := Success("saved"); got != "✓ saved" {
		t.Errorf("Success = %q", got)
	}
	if got := Error("failed"); got != "✗ failed" {
		t.Errorf("Error = %q", got)
	}
}
