package models

import "time"

// SyncMeta records the outcome of the last successful reconciliation pass
// for one record kind. It is persisted locally and only updated when a pass
// completes without an unrecoverable transport failure, so a failed pass
// leaves the previous change token in place and the next attempt retries the
// same work.
type SyncMeta struct {
	Kind RecordKind `json:"kind"`

	// ChangeToken is the cursor returned by the remote listing; passing it
	// back on the next pass yields an incremental listing.
	ChangeToken string `json:"change_token"`

	LastSyncedAt time.Time `json:"last_synced_at"`

	// DeviceID echoes this device's identifier for diagnostics.
	DeviceID string `json:"device_id"`
}
