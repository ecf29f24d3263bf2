// ABOUTME: Format version 1: the card mapping as a single msgpack value.
// ABOUTME: Keys are canonical UUID strings, ids are stored as 16-byte binaries.

package store

import (
	"errors"
	"fmt"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/google/uuid"
	"github.com/ugorji/go/codec"
)

var formatRecordV1 = formatRecord{
	Version: 1,
	Encode:  encodeV1,
	Decode:  decodeV1,
}

// cardV1 is the persisted shape of a card in version 1.
type cardV1 struct {
	ID        []byte   `codec:"id"`
	Title     string   `codec:"title"`
	Tags      []string `codec:"tags"`
	Content   string   `codec:"content"`
	CreatedAt int64    `codec:"created_at"`
	UpdatedAt int64    `codec:"updated_at"`
}

var msgpackHandle = newMsgpackHandle()

func newMsgpackHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	// str and bin are distinct types; ids must round-trip as binaries.
	h.WriteExt = true
	// sorted map keys, so the same mapping always yields the same bytes
	h.Canonical = true
	return h
}

func encodeV1(cards map[uuid.UUID]*models.Card) ([]byte, error) {
	wire := make(map[string]cardV1, len(cards))
	for id, c := range cards {
		idBytes := make([]byte, len(id))
		copy(idBytes, id[:])
		wire[id.String()] = cardV1{
			ID:        idBytes,
			Title:     c.Title,
			Tags:      c.Tags,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}

	var out []byte
	if err := codec.NewEncoderBytes(&out, msgpackHandle).Encode(wire); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeV1(payload []byte) (map[uuid.UUID]*models.Card, error) {
	if len(payload) == 0 {
		return nil, errors.New("empty payload")
	}

	var wire map[string]cardV1
	dec := codec.NewDecoderBytes(payload, msgpackHandle)
	if err := dec.Decode(&wire); err != nil {
		return nil, err
	}
	if n := dec.NumBytesRead(); n != len(payload) {
		return nil, fmt.Errorf("%d trailing bytes after card mapping", len(payload)-n)
	}
	if wire == nil {
		return nil, errors.New("nil card mapping")
	}

	cards := make(map[uuid.UUID]*models.Card, len(wire))
	for key, w := range wire {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("card key %q: %w", key, err)
		}
		if len(w.ID) != len(id) {
			return nil, fmt.Errorf("card %s: id is %d bytes, want %d", key, len(w.ID), len(id))
		}
		if uuid.UUID(w.ID) != id {
			return nil, fmt.Errorf("card %s: id does not match its key", key)
		}
		cards[id] = &models.Card{
			ID:        id,
			Title:     w.Title,
			Tags:      models.NormalizeTags(w.Tags),
			Content:   w.Content,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		}
	}
	return cards, nil
}
