// Package device assigns and caches the stable per-install device identifier
// used to tag every local edit.
//
// The identifier is generated once per installation, persisted in the local
// store's kv table, and cached in memory after the first read. It is never
// regenerated unless local storage is cleared.
package device

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/store"
)

// deviceIDKey is the kv-table key holding the durable identifier.
const deviceIDKey = "device_id"

// tempIDPrefix marks throwaway identifiers handed out before the durable id
// has loaded. They only affect diagnostic attribution, never version
// ordering.
const tempIDPrefix = "tmp-"

// Provider loads, generates and caches the device identifier.
type Provider struct {
	kv     store.KVRepository
	logger *logger.Logger

	mu     sync.RWMutex
	cached string
}

// NewProvider returns a Provider backed by the given kv repository.
func NewProvider(kv store.KVRepository, logger *logger.Logger) *Provider {
	return &Provider{kv: kv, logger: logger}
}

// DeviceID returns the cached identifier if present; otherwise it loads the
// persisted one, or generates a new identifier (time-ordered UUID, collision
// probability practically zero), persists it, caches it, and returns it.
//
// A persist failure is swallowed: the freshly generated id is still cached
// and returned, and persistence is retried on the next cold read.
func (p *Provider) DeviceID(ctx context.Context) (string, error) {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached != "" {
		return p.cached, nil
	}

	stored, err := p.kv.GetValue(ctx, deviceIDKey)
	if err == nil && stored != "" {
		p.cached = stored
		return stored, nil
	}
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return "", fmt.Errorf("load device id: %w", err)
	}

	id := generateID()
	if err = p.kv.SetValue(ctx, deviceIDKey, id); err != nil {
		// Retried on the next cold read.
		p.logger.Warn().Err(err).
			Str("func", "device.Provider.DeviceID").
			Msg("failed to persist device id, keeping in-memory only")
	}
	p.cached = id

	return id, nil
}

// CachedDeviceID returns the in-memory identifier without touching storage.
// When the cache has not been populated yet it manufactures a throwaway
// temporary identifier, so a few early local edits may carry a tmp- id until
// the durable one loads.
func (p *Provider) CachedDeviceID() string {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()
	if cached != "" {
		return cached
	}

	return tempIDPrefix + generateID()
}

// IsTemporary reports whether id is one of the throwaway identifiers handed
// out before the durable id loaded.
func IsTemporary(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

func generateID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
