package models

import "time"

// RecordKind identifies which collection a syncable record belongs to.
// Notes and tasks are synchronized independently of each other.
type RecordKind string

const (
	KindNote RecordKind = "note"
	KindTask RecordKind = "task"
)

// Kinds lists every record kind the engine synchronizes, in the order
// reconciliation passes process them.
func Kinds() []RecordKind {
	return []RecordKind{KindNote, KindTask}
}

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	return k == KindNote || k == KindTask
}

// SyncStatus is the synchronization state of a record.
type SyncStatus string

const (
	// StatusPending marks a record with local edits not yet reconciled.
	StatusPending SyncStatus = "pending"

	// StatusSynced marks a record identical on both sides as of the last pass.
	StatusSynced SyncStatus = "synced"

	// StatusConflict marks a record whose local and remote copies diverged at
	// the same version. A record in this state must have a corresponding entry
	// in the conflict registry.
	StatusConflict SyncStatus = "conflict"
)

// Payload is the domain content of a record. Notes use Title and Content;
// tasks use Content as the task text plus Done. The engine never interprets
// the payload beyond structural equality.
type Payload struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Done    bool   `json:"done,omitempty"`
}

// Record is a single syncable note or task together with the metadata that
// enables cross-device reconciliation.
//
// SyncVersion starts at 1 and is incremented by exactly 1 on every local
// edit; it is the primary conflict-detection discriminant. UpdatedAt is only
// ever used for display because device clocks are not trusted.
type Record struct {
	ID   string     `json:"id"`
	Kind RecordKind `json:"kind"`

	Payload Payload `json:"payload"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SyncVersion int64      `json:"sync_version"`
	SyncStatus  SyncStatus `json:"sync_status"`
	IsDirty     bool       `json:"is_dirty"`

	// DeviceID identifies the device that produced the current local version.
	DeviceID string `json:"device_id"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`

	HasConflict    bool   `json:"has_conflict,omitempty"`
	ConflictCopyID string `json:"conflict_copy_id,omitempty"`
}

// RecordUpdate carries a sparse edit to a record's payload.
// Nil fields are left untouched.
type RecordUpdate struct {
	Title   *string
	Content *string
	Done    *bool
}

// ContentEquals reports whether two records carry the same domain content.
// Equality is structural over Kind and Payload; all sync metadata
// (SyncVersion, SyncStatus, IsDirty, DeviceID, timestamps, conflict flags)
// is excluded so that metadata-only differences never look like edits.
func (r Record) ContentEquals(other Record) bool {
	return r.Kind == other.Kind && r.Payload == other.Payload
}

// TableName returns the local database table backing Record.
func (r *Record) TableName() string {
	return "records"
}
