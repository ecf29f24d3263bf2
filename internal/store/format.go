// ABOUTME: Versioned on-disk encoding for the whole card mapping.
// ABOUTME: A magic + version header selects the codec used for the payload.

package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/google/uuid"
)

// fileMagic starts every backing file.
var fileMagic = [4]byte{'S', 'Y', 'L', 'V'}

const headerSize = len(fileMagic) + 2

type formatVersion uint16

// A format version and the functions that read and write its payload.
type formatRecord struct {
	Version formatVersion
	Encode  func(cards map[uuid.UUID]*models.Card) ([]byte, error)
	Decode  func(payload []byte) (map[uuid.UUID]*models.Card, error)
}

// formats is the immutable set of known versions, oldest first.
type formats struct {
	versions  []formatRecord
	byVersion map[formatVersion]*formatRecord
}

// Formats lists every payload version this build can read. The last entry is
// the one used for writing.
var Formats = newFormats(
	formatRecordV1,
)

func newFormats(records ...formatRecord) formats {
	if len(records) == 0 {
		panic("store: at least one format version is required")
	}

	f := formats{
		versions:  make([]formatRecord, len(records)),
		byVersion: make(map[formatVersion]*formatRecord, len(records)),
	}
	for i, r := range records {
		if _, ok := f.byVersion[r.Version]; ok {
			panic(fmt.Sprintf("store: duplicate format version %d", r.Version))
		}
		f.versions[i] = r
		f.byVersion[r.Version] = &f.versions[i]
	}
	return f
}

// Latest returns the version used for new writes.
func (f *formats) Latest() formatRecord {
	return f.versions[len(f.versions)-1]
}

// Find returns the record for a version, or false if it is unknown.
func (f *formats) Find(v formatVersion) (formatRecord, bool) {
	r, ok := f.byVersion[v]
	if !ok {
		return formatRecord{}, false
	}
	return *r, true
}

// encodeCards serializes the mapping with the latest format, header included.
func encodeCards(cards map[uuid.UUID]*models.Card) ([]byte, error) {
	latest := Formats.Latest()

	payload, err := latest.Encode(cards)
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out, fileMagic[:])
	binary.BigEndian.PutUint16(out[len(fileMagic):], uint16(latest.Version))
	return append(out, payload...), nil
}

// decodeCards parses a backing file. Every failure wraps ErrDecode.
func decodeCards(data []byte) (map[uuid.UUID]*models.Card, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: file too short (%d bytes)", ErrDecode, len(data))
	}
	if !bytes.Equal(data[:len(fileMagic)], fileMagic[:]) {
		return nil, fmt.Errorf("%w: not a card store file", ErrDecode)
	}

	version := formatVersion(binary.BigEndian.Uint16(data[len(fileMagic):headerSize]))
	record, ok := Formats.Find(version)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrDecode, version)
	}

	cards, err := record.Decode(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: version %d: %w", ErrDecode, version, err)
	}
	return cards, nil
}
