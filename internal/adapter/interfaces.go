// Package adapter provides transport-layer abstractions for talking to the
// shared cloud object store.
//
// The primary abstraction is [CloudStore], which decouples the sync engine
// from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPCloudStore]) built on resty, scoped to the app-private folder of
// the authenticated account.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/pkruglov/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_store_mock.go -package=mock

// FileInfo describes one object in the store's listing.
type FileInfo struct {
	// Name is the object name within the app folder, e.g. "note/<id>.json".
	Name string `json:"name"`

	// ID is the store-assigned object identifier used for reads.
	ID string `json:"id"`

	// Version is the store's per-object revision counter.
	Version int64 `json:"version"`
}

// FileListing is the result of listing the app folder.
type FileListing struct {
	// Files holds entries changed since the cursor passed to ListFiles, or
	// the full folder when no cursor was given.
	Files []FileInfo `json:"files"`

	// ChangeToken is the cursor to pass on the next listing for an
	// incremental result.
	ChangeToken string `json:"change_token"`
}

// CloudStore is the narrow contract the engine consumes from the shared
// object store. Implementations are responsible for serialisation, bearer
// credential handling, and mapping transport errors to the sentinel values
// defined in this package.
type CloudStore interface {
	// ListFiles lists objects in the given kind's subfolder. since is the
	// change token from a previous listing ("" for a full listing).
	ListFiles(ctx context.Context, scope models.RecordKind, since string) (FileListing, error)

	// ReadFile downloads the object with the given id.
	ReadFile(ctx context.Context, id string) ([]byte, error)

	// WriteFile uploads data under the given object name, overwriting any
	// previous revision, and returns the resulting object info.
	WriteFile(ctx context.Context, name string, data []byte) (FileInfo, error)
}

// TokenProvider supplies a valid bearer credential, refreshing transparently
// where the underlying auth collaborator supports it. An empty token with a
// nil error means "no authenticated session": the engine skips the sync pass
// instead of failing.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
