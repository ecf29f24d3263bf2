// ABOUTME: Application state shared by every host (CLI, MCP, HTTP).
// ABOUTME: Serializes access to the one repository and parses string ids.

package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/ImFeH2/sylvo/internal/store"
	"github.com/google/uuid"
)

// MinPrefixLen is the shortest id prefix Lookup accepts.
const MinPrefixLen = 6

var (
	ErrInvalidID       = errors.New("invalid card id")
	ErrPrefixTooShort  = fmt.Errorf("prefix must be at least %d characters", MinPrefixLen)
	ErrAmbiguousPrefix = errors.New("prefix matches multiple cards")
	ErrCardNotFound    = errors.New("card not found")
)

// State owns the repository for the process lifetime. Every method holds the
// lock for its whole duration, so operations observe a total order.
type State struct {
	mu   sync.Mutex
	repo *store.Repository
}

// New wraps an opened repository.
func New(repo *store.Repository) *State {
	return &State{repo: repo}
}

// Path returns the backing file of the wrapped repository.
func (s *State) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Path()
}

// ParseID converts a canonical id string into a card id.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
	}
	return parsed, nil
}

// ListCards returns every card, most recently updated first.
func (s *State) ListCards() []models.Card {
	s.mu.Lock()
	cards := s.repo.GetAll()
	s.mu.Unlock()

	SortByUpdated(cards)
	return cards
}

// GetCard returns the card with the given id; ok is false if there is none.
func (s *State) GetCard(id string) (card models.Card, ok bool, err error) {
	parsed, err := ParseID(id)
	if err != nil {
		return models.Card{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok = s.repo.Get(parsed)
	return card, ok, nil
}

// AddCard creates and persists a card. tags are collapsed to a set.
func (s *State) AddCard(title string, tags []string, content string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Add(title, tags, content)
}

// DeleteCard removes a card and reports whether it existed.
func (s *State) DeleteCard(id string) (bool, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(parsed)
}

// RenameCard replaces a card's title and reports whether it was found.
func (s *State) RenameCard(id, title string) (bool, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.UpdateTitle(parsed, title)
}

// RetagCard replaces a card's tags and reports whether it was found.
func (s *State) RetagCard(id string, tags []string) (bool, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.UpdateTags(parsed, tags)
}

// RecontentCard replaces a card's content and reports whether it was found.
func (s *State) RecontentCard(id, content string) (bool, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.UpdateContent(parsed, content)
}

// Lookup resolves a full id or a unique id prefix of at least MinPrefixLen
// characters. It is meant for human-facing hosts.
func (s *State) Lookup(ref string) (models.Card, error) {
	if id, err := uuid.Parse(ref); err == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		card, ok := s.repo.Get(id)
		if !ok {
			return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, ref)
		}
		return card, nil
	}

	if len(ref) < MinPrefixLen {
		return models.Card{}, ErrPrefixTooShort
	}

	prefix := strings.ToLower(ref)
	s.mu.Lock()
	all := s.repo.GetAll()
	s.mu.Unlock()

	var matches []models.Card
	for _, c := range all {
		if strings.HasPrefix(c.ID.String(), prefix) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Card{}, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(matches))
	}
}

// SortByUpdated orders cards by UpdatedAt descending, ties broken by id.
func SortByUpdated(cards []models.Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].UpdatedAt != cards[j].UpdatedAt {
			return cards[i].UpdatedAt > cards[j].UpdatedAt
		}
		return cards[i].ID.String() < cards[j].ID.String()
	})
}
