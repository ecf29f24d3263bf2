// ABOUTME: Import of cards from JSON documents and markdown files.
// ABOUTME: Every entry becomes a new card through the Adder, never bypassing the constructor.

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImFeH2/sylvo/internal/models"
	"gopkg.in/yaml.v3"
)

// Entry is the user-authored part of a card; ids and timestamps are not imported.
type Entry struct {
	Title   string
	Tags    []string
	Content string
}

// Adder creates cards. *app.State satisfies it.
type Adder interface {
	AddCard(title string, tags []string, content string) (models.Card, error)
}

// ReadJSON parses a document written by WriteJSON.
func ReadJSON(r io.Reader) ([]Entry, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		entries = append(entries, Entry{Title: c.Title, Tags: c.Tags, Content: c.Content})
	}
	return entries, nil
}

// ParseMarkdown reads one markdown file. Without frontmatter the title falls
// back to the file name and the whole file is content.
func ParseMarkdown(name string, data []byte) (Entry, error) {
	content := string(data)
	var entry Entry

	// Frontmatter ends at the first unindented closing fence.
	if rest, ok := strings.CutPrefix(content, "---\n"); ok {
		if end := strings.Index(rest, "\n---\n"); end >= 0 {
			var frontmatter struct {
				Title string   `yaml:"title"`
				Tags  []string `yaml:"tags"`
			}
			if err := yaml.Unmarshal([]byte(rest[:end+1]), &frontmatter); err != nil {
				return Entry{}, fmt.Errorf("parse frontmatter %s: %w", name, err)
			}
			entry.Title = frontmatter.Title
			entry.Tags = frontmatter.Tags
			content = strings.TrimPrefix(rest[end+len("\n---\n"):], "\n")
		}
	}

	if entry.Title == "" {
		entry.Title = strings.TrimSuffix(filepath.Base(name), ".md")
	}
	entry.Content = content
	return entry, nil
}

// ReadPath loads entries from a JSON file, a markdown file, or a directory
// of markdown files.
func ReadPath(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return readMarkdownDir(path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".json") {
		return ReadJSON(bytes.NewReader(data))
	}

	entry, err := ParseMarkdown(path, data)
	if err != nil {
		return nil, err
	}
	return []Entry{entry}, nil
}

func readMarkdownDir(dir string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		data, err := os.ReadFile(path) //nolint:gosec // walking a user-specified directory
		if err != nil {
			return err
		}
		entry, err := ParseMarkdown(path, data)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Import adds every entry and returns how many were created. It stops at the
// first storage error.
func Import(dst Adder, entries []Entry) (int, error) {
	for i, e := range entries {
		if _, err := dst.AddCard(e.Title, e.Tags, e.Content); err != nil {
			return i, fmt.Errorf("import %q: %w", e.Title, err)
		}
	}
	return len(entries), nil
}
