package service

import (
	"context"
	"time"

	"github.com/pkruglov/notesync/models"
)

// DeviceSource supplies the stable identifier of the current installation.
type DeviceSource interface {
	DeviceID(ctx context.Context) (string, error)
	CachedDeviceID() string
}

// Announcer notifies interested parties that locally visible data changed.
type Announcer interface {
	PublishDataChanged(kind models.RecordKind)
}

// RecordVersioner owns every sync-state transition a record can go through.
type RecordVersioner interface {
	Create(kind models.RecordKind, payload models.Payload) (models.Record, error)
	BumpOnEdit(record *models.Record, updates models.RecordUpdate)
	MarkSynced(record *models.Record)
	MarkConflict(record *models.Record, conflictID string)
	ResolveAsSynced(record *models.Record)
	MigrateLegacy(raw map[string]any) (models.Record, bool)
}

// SyncService reconciles the local store against the remote cloud store.
type SyncService interface {
	PerformIncrementalSync(ctx context.Context) error
	ResolveConflict(ctx context.Context, conflictID string, choice models.ConflictChoice) error
}

// SyncTrigger accepts the UI-side events that may eventually dispatch a sync pass.
type SyncTrigger interface {
	OnFocus()
	OnDataMutated(kind models.RecordKind)
	Close()
}

// ConflictListener is called after every change to the pending conflict set.
type ConflictListener func(pending []models.Conflict)

type clock func() time.Time
