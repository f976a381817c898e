package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkruglov/notesync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDevice — minimal DeviceSource for versioner tests.
type stubDevice struct {
	id string
}

func (s *stubDevice) DeviceID(_ context.Context) (string, error) { return s.id, nil }
func (s *stubDevice) CachedDeviceID() string                     { return s.id }

func newTestVersioner(deviceID string, at time.Time) *Versioner {
	v := NewVersioner(&stubDevice{id: deviceID})
	v.now = func() time.Time { return at }
	return v
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ── Create ───────────────────────────────────────────────────────────────────

func TestVersioner_Create(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVersioner("device-1", at)

	record, err := v.Create(models.KindNote, models.Payload{Title: "groceries", Content: "milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.KindNote, record.Kind)
	assert.Equal(t, "groceries", record.Payload.Title)
	assert.Equal(t, int64(1), record.SyncVersion)
	assert.Equal(t, models.StatusPending, record.SyncStatus)
	assert.True(t, record.IsDirty)
	assert.Equal(t, "device-1", record.DeviceID)
	assert.Equal(t, at, record.CreatedAt)
	assert.Equal(t, at, record.UpdatedAt)
	assert.Nil(t, record.LastSyncedAt)
}

func TestVersioner_Create_UniqueIDs(t *testing.T) {
	v := newTestVersioner("device-1", time.Now())

	first, err := v.Create(models.KindTask, models.Payload{Content: "call bank"})
	require.NoError(t, err)
	second, err := v.Create(models.KindTask, models.Payload{Content: "call bank"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestVersioner_Create_InvalidKind(t *testing.T) {
	v := newTestVersioner("device-1", time.Now())

	_, err := v.Create(models.RecordKind("bookmark"), models.Payload{})
	assert.ErrorIs(t, err, ErrInvalidRecordKind)
}

// ── BumpOnEdit ───────────────────────────────────────────────────────────────

func TestVersioner_BumpOnEdit(t *testing.T) {
	tests := []struct {
		name        string
		updates     models.RecordUpdate
		wantPayload models.Payload
	}{
		{
			name:        "title only",
			updates:     models.RecordUpdate{Title: strPtr("renamed")},
			wantPayload: models.Payload{Title: "renamed", Content: "original text"},
		},
		{
			name:        "content only",
			updates:     models.RecordUpdate{Content: strPtr("rewritten")},
			wantPayload: models.Payload{Title: "original", Content: "rewritten"},
		},
		{
			name:        "mark task done",
			updates:     models.RecordUpdate{Done: boolPtr(true)},
			wantPayload: models.Payload{Title: "original", Content: "original text", Done: true},
		},
		{
			name:        "clear content to empty string",
			updates:     models.RecordUpdate{Content: strPtr("")},
			wantPayload: models.Payload{Title: "original"},
		},
		{
			name:        "empty update still bumps",
			updates:     models.RecordUpdate{},
			wantPayload: models.Payload{Title: "original", Content: "original text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
			v := newTestVersioner("device-2", at)

			record := models.Record{
				ID:          "rec-1",
				Kind:        models.KindTask,
				Payload:     models.Payload{Title: "original", Content: "original text"},
				SyncVersion: 4,
				SyncStatus:  models.StatusSynced,
				DeviceID:    "device-1",
			}

			v.BumpOnEdit(&record, tt.updates)

			assert.Equal(t, tt.wantPayload, record.Payload)
			assert.Equal(t, int64(5), record.SyncVersion)
			assert.Equal(t, models.StatusPending, record.SyncStatus)
			assert.True(t, record.IsDirty)
			assert.Equal(t, "device-2", record.DeviceID)
			assert.Equal(t, at, record.UpdatedAt)
		})
	}
}

// ── MarkSynced / MarkConflict / ResolveAsSynced ─────────────────────────────

func TestVersioner_MarkSynced(t *testing.T) {
	at := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	v := newTestVersioner("device-1", at)

	record := models.Record{
		SyncVersion:    7,
		SyncStatus:     models.StatusPending,
		IsDirty:        true,
		HasConflict:    true,
		ConflictCopyID: "conf-1",
	}

	v.MarkSynced(&record)

	assert.Equal(t, models.StatusSynced, record.SyncStatus)
	assert.False(t, record.IsDirty)
	require.NotNil(t, record.LastSyncedAt)
	assert.Equal(t, at, *record.LastSyncedAt)
	assert.False(t, record.HasConflict)
	assert.Empty(t, record.ConflictCopyID)
	// version is never touched outside an edit
	assert.Equal(t, int64(7), record.SyncVersion)
}

func TestVersioner_MarkConflict(t *testing.T) {
	v := newTestVersioner("device-1", time.Now())

	record := models.Record{
		Payload:     models.Payload{Title: "mine"},
		SyncVersion: 3,
		SyncStatus:  models.StatusSynced,
	}

	v.MarkConflict(&record, "conf-42")

	assert.Equal(t, models.StatusConflict, record.SyncStatus)
	assert.True(t, record.IsDirty)
	assert.True(t, record.HasConflict)
	assert.Equal(t, "conf-42", record.ConflictCopyID)
	// payload and version stay untouched while the conflict is pending
	assert.Equal(t, "mine", record.Payload.Title)
	assert.Equal(t, int64(3), record.SyncVersion)
}

func TestVersioner_ResolveAsSynced(t *testing.T) {
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	v := newTestVersioner("device-1", at)

	record := models.Record{
		SyncVersion:    3,
		SyncStatus:     models.StatusConflict,
		IsDirty:        true,
		HasConflict:    true,
		ConflictCopyID: "conf-42",
	}

	v.ResolveAsSynced(&record)

	assert.Equal(t, models.StatusSynced, record.SyncStatus)
	assert.False(t, record.IsDirty)
	assert.False(t, record.HasConflict)
	assert.Empty(t, record.ConflictCopyID)
	require.NotNil(t, record.LastSyncedAt)
}

// ── MigrateLegacy ────────────────────────────────────────────────────────────

func TestVersioner_MigrateLegacy_WellFormed(t *testing.T) {
	at := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	v := newTestVersioner("device-9", at)

	raw := map[string]any{
		"id":          "legacy-1",
		"kind":        "task",
		"title":       "old task",
		"content":     "carried over",
		"done":        true,
		"createdAt":   "2024-06-01T10:00:00Z",
		"updatedAt":   "2024-06-02T10:00:00Z",
		"syncVersion": float64(5),
	}

	record, defaulted := v.MigrateLegacy(raw)

	assert.False(t, defaulted)
	assert.Equal(t, "legacy-1", record.ID)
	assert.Equal(t, models.KindTask, record.Kind)
	assert.Equal(t, "old task", record.Payload.Title)
	assert.Equal(t, "carried over", record.Payload.Content)
	assert.True(t, record.Payload.Done)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), record.CreatedAt)
	assert.Equal(t, int64(5), record.SyncVersion)
	assert.Equal(t, models.StatusSynced, record.SyncStatus)
	assert.False(t, record.IsDirty)
	assert.Nil(t, record.LastSyncedAt)
	assert.Equal(t, "device-9", record.DeviceID)
}

// A migrated record enters the store settled: nothing gets pushed until the
// user edits it here.
func TestVersioner_MigrateLegacy_EntersSettled(t *testing.T) {
	v := newTestVersioner("device-9", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	record, _ := v.MigrateLegacy(map[string]any{"id": "legacy-1", "kind": "note"})

	assert.Equal(t, models.StatusSynced, record.SyncStatus)
	assert.False(t, record.IsDirty)
	assert.Nil(t, record.LastSyncedAt)
}

func TestVersioner_MigrateLegacy_Defaults(t *testing.T) {
	at := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "nil map", raw: nil},
		{name: "empty map", raw: map[string]any{}},
		{
			name: "wrong types everywhere",
			raw: map[string]any{
				"id":          42,
				"kind":        []string{"note"},
				"title":       nil,
				"createdAt":   true,
				"syncVersion": "five",
			},
		},
		{
			name: "unknown kind",
			raw:  map[string]any{"id": "x", "kind": "bookmark"},
		},
		{
			name: "zero sync version",
			raw:  map[string]any{"id": "x", "kind": "note", "syncVersion": float64(0)},
		},
		{
			name: "garbage date string",
			raw:  map[string]any{"id": "x", "kind": "note", "createdAt": "yesterday-ish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVersioner("device-9", at)

			record, defaulted := v.MigrateLegacy(tt.raw)

			assert.True(t, defaulted)
			assert.NotEmpty(t, record.ID)
			assert.True(t, record.Kind.Valid())
			assert.GreaterOrEqual(t, record.SyncVersion, int64(1))
			assert.False(t, record.CreatedAt.IsZero())
			assert.False(t, record.UpdatedAt.IsZero())
			assert.Equal(t, models.StatusSynced, record.SyncStatus)
			assert.False(t, record.IsDirty)
		})
	}
}

func TestVersioner_MigrateLegacy_UnixMillisDates(t *testing.T) {
	v := newTestVersioner("device-9", time.Now())

	raw := map[string]any{
		"id":          "legacy-2",
		"kind":        "note",
		"createdAt":   float64(1717236000000), // 2024-06-01T10:00:00Z
		"syncVersion": float64(2),
	}

	record, defaulted := v.MigrateLegacy(raw)

	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), record.CreatedAt.UTC())
	// updatedAt was absent, so it falls back to createdAt and is reported
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	assert.True(t, defaulted)
}
