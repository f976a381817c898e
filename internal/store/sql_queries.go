package store

const (
	upsertRecord = `
		INSERT INTO records (
			id,
			kind,
			title,
			content,
			done,
			created_at,
			updated_at,
			sync_version,
			sync_status,
			is_dirty,
			device_id,
			last_synced_at,
			has_conflict,
			conflict_copy_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			kind             = excluded.kind,
			title            = excluded.title,
			content          = excluded.content,
			done             = excluded.done,
			created_at       = excluded.created_at,
			updated_at       = excluded.updated_at,
			sync_version     = excluded.sync_version,
			sync_status      = excluded.sync_status,
			is_dirty         = excluded.is_dirty,
			device_id        = excluded.device_id,
			last_synced_at   = excluded.last_synced_at,
			has_conflict     = excluded.has_conflict,
			conflict_copy_id = excluded.conflict_copy_id;`

	deleteRecord = `
		DELETE FROM records
		WHERE id = ?;`

	getSyncMeta = `
		SELECT
			kind,
			change_token,
			last_synced_at,
			device_id
		FROM sync_meta
		WHERE kind = ?;`

	upsertSyncMeta = `
		INSERT INTO sync_meta (
			kind,
			change_token,
			last_synced_at,
			device_id
		) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind) DO UPDATE SET
			change_token   = excluded.change_token,
			last_synced_at = excluded.last_synced_at,
			device_id      = excluded.device_id;`

	getKVValue = `
		SELECT value
		FROM kv
		WHERE key = ?;`

	upsertKVValue = `
		INSERT INTO kv (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value;`
)

// recordColumns is the canonical column order shared by the squirrel-built
// SELECT queries and row scanning.
var recordColumns = []string{
	"id",
	"kind",
	"title",
	"content",
	"done",
	"created_at",
	"updated_at",
	"sync_version",
	"sync_status",
	"is_dirty",
	"device_id",
	"last_synced_at",
	"has_conflict",
	"conflict_copy_id",
}
