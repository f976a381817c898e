package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkruglov/notesync/models"
)

// Versioner is the single writer of record sync metadata. Every state
// transition goes through it so the versioning rules live in one place.
type Versioner struct {
	device DeviceSource
	now    clock
}

func NewVersioner(device DeviceSource) *Versioner {
	return &Versioner{device: device, now: time.Now}
}

// Create stamps a brand-new record: version 1, pending, dirty, owned by
// the current device.
func (v *Versioner) Create(kind models.RecordKind, payload models.Payload) (models.Record, error) {
	if !kind.Valid() {
		return models.Record{}, ErrInvalidRecordKind
	}

	now := v.now()
	return models.Record{
		ID:          newRecordID(),
		Kind:        kind,
		Payload:     payload,
		CreatedAt:   now,
		UpdatedAt:   now,
		SyncVersion: 1,
		SyncStatus:  models.StatusPending,
		IsDirty:     true,
		DeviceID:    v.device.CachedDeviceID(),
	}, nil
}

// BumpOnEdit applies a sparse payload update and advances the record to a
// new version. The edit always re-stamps the device, even when the payload
// ends up unchanged: the user touched the record on this installation.
func (v *Versioner) BumpOnEdit(record *models.Record, updates models.RecordUpdate) {
	if updates.Title != nil {
		record.Payload.Title = *updates.Title
	}
	if updates.Content != nil {
		record.Payload.Content = *updates.Content
	}
	if updates.Done != nil {
		record.Payload.Done = *updates.Done
	}

	record.SyncVersion++
	record.UpdatedAt = v.now()
	record.SyncStatus = models.StatusPending
	record.IsDirty = true
	record.DeviceID = v.device.CachedDeviceID()
}

// MarkSynced settles a record after a successful push or pull.
func (v *Versioner) MarkSynced(record *models.Record) {
	now := v.now()
	record.SyncStatus = models.StatusSynced
	record.IsDirty = false
	record.LastSyncedAt = &now
	record.HasConflict = false
	record.ConflictCopyID = ""
}

// MarkConflict flags a record as contested without touching its payload.
// The record stays dirty so an aborted registry still re-detects it.
func (v *Versioner) MarkConflict(record *models.Record, conflictID string) {
	record.SyncStatus = models.StatusConflict
	record.IsDirty = true
	record.HasConflict = true
	record.ConflictCopyID = conflictID
}

// ResolveAsSynced accepts a winning copy after conflict resolution.
func (v *Versioner) ResolveAsSynced(record *models.Record) {
	record.HasConflict = false
	record.ConflictCopyID = ""
	v.MarkSynced(record)
}

// MigrateLegacy lifts a record persisted before sync metadata existed into
// the current shape. It is total: whatever the input looks like, it returns
// a usable record and reports whether any field had to be defaulted.
func (v *Versioner) MigrateLegacy(raw map[string]any) (models.Record, bool) {
	defaulted := false

	str := func(key string) string {
		if s, ok := raw[key].(string); ok {
			return s
		}
		return ""
	}

	record := models.Record{
		ID: str("id"),
		Payload: models.Payload{
			Title:   str("title"),
			Content: str("content"),
		},
	}
	if record.ID == "" {
		record.ID = newRecordID()
		defaulted = true
	}

	if done, ok := raw["done"].(bool); ok {
		record.Payload.Done = done
	}

	kind := models.RecordKind(str("kind"))
	if !kind.Valid() {
		kind = models.KindNote
		defaulted = true
	}
	record.Kind = kind

	now := v.now()
	record.CreatedAt, defaulted = coerceTime(raw["createdAt"], now, defaulted)
	record.UpdatedAt, defaulted = coerceTime(raw["updatedAt"], record.CreatedAt, defaulted)

	switch version := raw["syncVersion"].(type) {
	case float64:
		if version >= 1 {
			record.SyncVersion = int64(version)
		} else {
			record.SyncVersion = 1
			defaulted = true
		}
	case int64:
		if version >= 1 {
			record.SyncVersion = version
		} else {
			record.SyncVersion = 1
			defaulted = true
		}
	default:
		record.SyncVersion = 1
		defaulted = true
	}

	// Migrated records enter the store settled: they predate sync, so there
	// is nothing to push until the user edits them.
	record.SyncStatus = models.StatusSynced
	record.IsDirty = false
	record.DeviceID = v.device.CachedDeviceID()

	return record, defaulted
}

// coerceTime accepts the date encodings legacy stores are known to hold:
// RFC 3339 strings, unix-milliseconds numbers and native time values.
func coerceTime(value any, fallback time.Time, defaulted bool) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		if !t.IsZero() {
			return t, defaulted
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, defaulted
		}
	case float64:
		if t > 0 {
			return time.UnixMilli(int64(t)), defaulted
		}
	case int64:
		if t > 0 {
			return time.UnixMilli(t), defaulted
		}
	}
	return fallback, true
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
