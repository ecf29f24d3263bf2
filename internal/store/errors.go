// ABOUTME: Error taxonomy for the card store.
// ABOUTME: I/O and decode failures are wrapped sentinels checked with errors.Is.

package store

import "errors"

var (
	// ErrIO wraps any file system failure while opening or saving a store.
	ErrIO = errors.New("card store i/o")

	// ErrDecode means the backing file exists but is not a valid card store.
	ErrDecode = errors.New("decode card store")

	// ErrInvalidName rejects repository names that are not a single path element.
	ErrInvalidName = errors.New("invalid repository name")
)
