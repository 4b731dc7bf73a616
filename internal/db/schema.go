package db

// Key/value table holding serialized client state blobs
const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

const upsertKV = `
INSERT INTO kv_store (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

const selectKV = `
SELECT value FROM kv_store WHERE key = ?
`

const selectKVUpdatedAt = `
SELECT updated_at FROM kv_store WHERE key = ?
`
