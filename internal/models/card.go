// ABOUTME: Card model representing a flashcard/note with tags and timestamps.
// ABOUTME: Mutators replace a field wholesale and touch UpdatedAt.

package models

import (
	"time"

	"github.com/google/uuid"
)

// nowMillis is the clock used for card timestamps. Tests swap it out.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Card is a single note record. Timestamps are milliseconds since the epoch.
type Card struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Content   string    `json:"content"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
}

// NewCard creates a card with a fresh random ID and CreatedAt == UpdatedAt.
func NewCard(title string, tags []string, content string) *Card {
	now := nowMillis()
	return &Card{
		ID:        uuid.New(),
		Title:     title,
		Tags:      NormalizeTags(tags),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetTitle replaces the title.
func (c *Card) SetTitle(title string) {
	c.Title = title
	c.touch()
}

// SetTags replaces the whole tag set.
func (c *Card) SetTags(tags []string) {
	c.Tags = NormalizeTags(tags)
	c.touch()
}

// SetContent replaces the body.
func (c *Card) SetContent(content string) {
	c.Content = content
	c.touch()
}

// touch moves UpdatedAt to the current time. It never moves backwards, so a
// clock step cannot break UpdatedAt >= CreatedAt.
func (c *Card) touch() {
	now := nowMillis()
	if now > c.UpdatedAt {
		c.UpdatedAt = now
	}
}

// Clone returns a deep copy that shares no slices with c. Tags is never
// nil, so an untagged card encodes as an empty array.
func (c *Card) Clone() Card {
	cp := *c
	cp.Tags = append(make([]string, 0, len(c.Tags)), c.Tags...)
	return cp
}

// HasTag reports whether the card carries the exact tag name.
func (c *Card) HasTag(name string) bool {
	for _, t := range c.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Created returns CreatedAt as a time.Time.
func (c *Card) Created() time.Time {
	return time.UnixMilli(c.CreatedAt)
}

// Updated returns UpdatedAt as a time.Time.
func (c *Card) Updated() time.Time {
	return time.UnixMilli(c.UpdatedAt)
}
