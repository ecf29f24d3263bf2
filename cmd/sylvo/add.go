// ABOUTME: Add command for creating new cards.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ImFeH2/sylvo/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new card",
	Long:  `Create a new card with the given title. Content can be provided via --content, --file, or $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		tagsFlag, _ := cmd.Flags().GetString("tags")
		content, err := readContent(cmd, "")
		if err != nil {
			return err
		}

		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("card content cannot be empty")
		}

		card, err := appState.AddCard(title, splitTags(tagsFlag), content)
		if err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created card %s", card.ID.String()[:ui.ShortIDLen])))
		return nil
	},
}

// readContent takes content from --content, then --file, then $EDITOR
// seeded with initial.
func readContent(cmd *cobra.Command, initial string) (string, error) {
	contentFlag, _ := cmd.Flags().GetString("content")
	fileFlag, _ := cmd.Flags().GetString("file")

	switch {
	case cmd.Flags().Changed("content"):
		return contentFlag, nil
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	default:
		content, err := openEditor(initial)
		if err != nil {
			return "", fmt.Errorf("failed to open editor: %w", err)
		}
		return content, nil
	}
}

// splitTags parses a comma-separated flag value, dropping blanks.
func splitTags(flag string) []string {
	var tags []string
	for _, tag := range strings.Split(flag, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "sylvo-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func init() {
	addCmd.Flags().String("tags", "", "comma-separated tags")
	addCmd.Flags().String("content", "", "card content (inline)")
	addCmd.Flags().String("file", "", "read content from file")
	rootCmd.AddCommand(addCmd)
}
