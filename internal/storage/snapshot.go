package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SnapshotKey is the fixed key the whole game state lives under. The blob
// is opaque here; encoding belongs to the game store.
const SnapshotKey = "game_state"

// SQLiteStore persists the snapshot as a single key/value row.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (r *SQLiteStore) Load(ctx context.Context) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, SnapshotKey)

	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("snapshot load: %w", err)
	}
	return blob, true, nil
}

func (r *SQLiteStore) Save(ctx context.Context, blob []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, SnapshotKey, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
