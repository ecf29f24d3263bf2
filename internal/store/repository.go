// ABOUTME: Repository holding every card in memory, backed by one file.
// ABOUTME: Each mutation rewrites the whole mapping before it returns.

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/google/uuid"
)

const (
	// DefaultName is the repository name hosts use unless configured otherwise.
	DefaultName = "default"

	dirPerm  os.FileMode = 0750
	filePerm os.FileMode = 0600
)

// Repository is the in-memory card index plus its backing file.
//
// A Repository is not safe for concurrent use; callers serialize access
// (see app.State). A failed Save after a mutation leaves the mutation in
// memory: the process keeps serving it and the next successful Save
// persists it.
type Repository struct {
	name     string
	path     string
	filePerm os.FileMode
	cards    map[uuid.UUID]*models.Card
	logger   *slog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for load and save events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithFileMode sets the permissions of the backing file.
func WithFileMode(perm os.FileMode) Option {
	return func(r *Repository) {
		r.filePerm = perm
	}
}

// Open binds a repository to directory/name. An existing file is loaded in
// full; a missing one is created holding an empty mapping.
func Open(directory, name string, opts ...Option) (*Repository, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	r := &Repository{
		name:     name,
		path:     filepath.Join(directory, name),
		filePerm: filePerm,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := os.MkdirAll(directory, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create directory: %w", ErrIO, err)
	}

	data, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		cards, err := decodeCards(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", r.path, err)
		}
		r.cards = cards
		r.logger.Debug("loaded card store", "path", r.path, "cards", len(cards), "bytes", len(data))
	case errors.Is(err, fs.ErrNotExist):
		r.cards = make(map[uuid.UUID]*models.Card)
		if err := r.Save(); err != nil {
			return nil, err
		}
		r.logger.Debug("initialized card store", "path", r.path)
	default:
		return nil, fmt.Errorf("%w: read: %w", ErrIO, err)
	}

	return r, nil
}

// Name returns the logical repository name.
func (r *Repository) Name() string {
	return r.name
}

// Path returns the backing file location.
func (r *Repository) Path() string {
	return r.path
}

// Len returns the number of cards held.
func (r *Repository) Len() int {
	return len(r.cards)
}

// Save encodes the whole mapping and atomically replaces the backing file.
// Every failure, including one from the encoder, wraps ErrIO.
func (r *Repository) Save() error {
	data, err := encodeCards(r.cards)
	if err != nil {
		r.logger.Error("encode card store failed", "path", r.path, "error", err)
		return fmt.Errorf("%w: save: %w", ErrIO, err)
	}

	if err := writeFileAtomic(r.path, data, r.filePerm); err != nil {
		r.logger.Error("save card store failed", "path", r.path, "error", err)
		return fmt.Errorf("%w: save: %w", ErrIO, err)
	}

	r.logger.Debug("saved card store", "path", r.path, "cards", len(r.cards), "bytes", len(data))
	return nil
}

// Add creates a card, stores it and persists the mapping.
func (r *Repository) Add(title string, tags []string, content string) (models.Card, error) {
	card := models.NewCard(title, tags, content)
	r.cards[card.ID] = card

	if err := r.Save(); err != nil {
		return models.Card{}, err
	}
	return card.Clone(), nil
}

// Get returns a copy of the card with the given id.
func (r *Repository) Get(id uuid.UUID) (models.Card, bool) {
	card, ok := r.cards[id]
	if !ok {
		return models.Card{}, false
	}
	return card.Clone(), true
}

// GetAll returns a copy of every card, in no particular order.
func (r *Repository) GetAll() []models.Card {
	cards := make([]models.Card, 0, len(r.cards))
	for _, c := range r.cards {
		cards = append(cards, c.Clone())
	}
	return cards
}

// Delete removes a card. Nothing is written when the id is unknown.
func (r *Repository) Delete(id uuid.UUID) (bool, error) {
	if _, ok := r.cards[id]; !ok {
		return false, nil
	}
	delete(r.cards, id)

	if err := r.Save(); err != nil {
		return true, err
	}
	return true, nil
}

// UpdateTitle replaces a card's title.
func (r *Repository) UpdateTitle(id uuid.UUID, title string) (bool, error) {
	return r.update(id, func(c *models.Card) { c.SetTitle(title) })
}

// UpdateTags replaces a card's tag set.
func (r *Repository) UpdateTags(id uuid.UUID, tags []string) (bool, error) {
	return r.update(id, func(c *models.Card) { c.SetTags(tags) })
}

// UpdateContent replaces a card's body.
func (r *Repository) UpdateContent(id uuid.UUID, content string) (bool, error) {
	return r.update(id, func(c *models.Card) { c.SetContent(content) })
}

func (r *Repository) update(id uuid.UUID, mutate func(*models.Card)) (bool, error) {
	card, ok := r.cards[id]
	if !ok {
		return false, nil
	}
	mutate(card)

	if err := r.Save(); err != nil {
		return true, err
	}
	return true, nil
}
