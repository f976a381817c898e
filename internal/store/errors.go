package store

import "errors"

var (
	// ErrRecordNotFound is returned when a record id has no row locally.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMetaNotFound is returned when no sync metadata has been persisted
	// for a kind yet (i.e. no pass has completed on this install).
	ErrMetaNotFound = errors.New("sync meta not found")

	// ErrKeyNotFound is returned by the kv table for a missing key.
	ErrKeyNotFound = errors.New("key not found")
)
