// ABOUTME: Export of cards to JSON documents and markdown files.
// ABOUTME: Markdown files carry YAML frontmatter with id, title, tags and timestamps.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ImFeH2/sylvo/internal/models"
	"gopkg.in/yaml.v3"
)

// Version identifies the JSON document layout.
const Version = "1.0"

// maxFilenameLen caps the title part of a markdown file name, in bytes.
const maxFilenameLen = 100

// Card is the export form of a card. Timestamps are UTC times rather than
// epoch milliseconds, and the content lives in the markdown body.
type Card struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"-"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"created_at" yaml:"created"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated"`
}

// Document is the top-level JSON export.
type Document struct {
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	Cards      []Card    `json:"cards"`
}

// FromCard converts a stored card into its export form.
func FromCard(c models.Card) Card {
	return Card{
		ID:        c.ID.String(),
		Title:     c.Title,
		Content:   c.Content,
		Tags:      c.Tags,
		CreatedAt: c.Created().UTC(),
		UpdatedAt: c.Updated().UTC(),
	}
}

// WriteJSON encodes cards as one indented JSON document.
func WriteJSON(w io.Writer, cards []models.Card, now time.Time) error {
	doc := Document{
		ExportedAt: now.UTC(),
		Version:    Version,
		Cards:      make([]Card, 0, len(cards)),
	}
	for _, c := range cards {
		doc.Cards = append(doc.Cards, FromCard(c))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// Markdown renders one card as frontmatter followed by its content.
func Markdown(c models.Card) ([]byte, error) {
	frontmatter, err := yaml.Marshal(FromCard(c))
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString(c.Content)
	return []byte(sb.String()), nil
}

// WriteMarkdownDir writes one markdown file per card into dir.
// File names combine the sanitized title with the short id so titles may repeat.
func WriteMarkdownDir(dir string, cards []models.Card) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	for _, c := range cards {
		data, err := Markdown(c)
		if err != nil {
			return err
		}

		filename := fmt.Sprintf("%s-%s.md", SanitizeFilename(c.Title), c.ID.String()[:8])
		if err := os.WriteFile(filepath.Join(dir, filename), data, 0600); err != nil {
			return err
		}
	}
	return nil
}

// SanitizeFilename replaces path-unsafe characters and caps the result at
// maxFilenameLen bytes, cutting only on a rune boundary.
func SanitizeFilename(name string) string {
	// Replace unsafe characters
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > maxFilenameLen {
		cut := maxFilenameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	if name == "" {
		name = "untitled"
	}
	return name
}
