package store

const (
	getSnapshot = `SELECT value
		FROM dict_snapshot
		WHERE key = ?;`

	saveSnapshot = `INSERT INTO dict_snapshot (key, value, checksum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			checksum = excluded.checksum,
			updated_at = excluded.updated_at;`

	deleteSnapshot = `DELETE FROM dict_snapshot
		WHERE key = ?;`
)
