package service

import (
	"sync"

	"github.com/pkruglov/notesync/models"
)

// ConflictRegistry holds the conflicts detected during reconciliation that
// still await a user decision. It is an in-memory queue owned by whoever
// constructs it; nothing in the package reaches for a shared instance.
type ConflictRegistry struct {
	mu        sync.Mutex
	pending   []models.Conflict
	listeners map[int]ConflictListener
	nextID    int
}

func NewConflictRegistry() *ConflictRegistry {
	return &ConflictRegistry{listeners: make(map[int]ConflictListener)}
}

// Pending returns a copy of the queued conflicts in detection order.
func (r *ConflictRegistry) Pending() []models.Conflict {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Conflict(nil), r.pending...)
}

// Get looks a queued conflict up by its id.
func (r *ConflictRegistry) Get(conflictID string) (models.Conflict, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conflict := range r.pending {
		if conflict.ID == conflictID {
			return conflict, true
		}
	}
	return models.Conflict{}, false
}

// Enqueue registers a detected conflict. A conflict for the same record
// replaces the stale entry in place, so repeated reconciliation passes
// never grow the queue for one record.
func (r *ConflictRegistry) Enqueue(conflict models.Conflict) {
	r.mu.Lock()
	replaced := false
	for i, queued := range r.pending {
		if queued.Local.ID == conflict.Local.ID {
			r.pending[i] = conflict
			replaced = true
			break
		}
	}
	if !replaced {
		r.pending = append(r.pending, conflict)
	}
	listeners, snapshot := r.snapshotLocked()
	r.mu.Unlock()

	notify(listeners, snapshot)
}

// Resolve removes a conflict from the queue and reports whether it was there.
func (r *ConflictRegistry) Resolve(conflictID string) bool {
	r.mu.Lock()
	for i, conflict := range r.pending {
		if conflict.ID == conflictID {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			listeners, snapshot := r.snapshotLocked()
			r.mu.Unlock()

			notify(listeners, snapshot)
			return true
		}
	}
	r.mu.Unlock()
	return false
}

// AddListener subscribes to queue changes and returns an unsubscribe func.
func (r *ConflictRegistry) AddListener(listener ConflictListener) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

// snapshotLocked copies the queue and the listener set so both can be used
// after the lock is released. Callers hold r.mu.
func (r *ConflictRegistry) snapshotLocked() ([]ConflictListener, []models.Conflict) {
	listeners := make([]ConflictListener, 0, len(r.listeners))
	for _, listener := range r.listeners {
		listeners = append(listeners, listener)
	}
	return listeners, append([]models.Conflict(nil), r.pending...)
}

func notify(listeners []ConflictListener, snapshot []models.Conflict) {
	for _, listener := range listeners {
		listener(snapshot)
	}
}
