package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"

	_ "modernc.org/sqlite"
)

// SQLite stores device entries in a local database file
type SQLite struct {
	db       *sql.DB
	deviceID types.DeviceID
}

var _ interfaces.Repository = &SQLite{}

// New opens (creating if needed) the database at path and prepares the schema
func New(ctx context.Context, path string, deviceID types.DeviceID) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite", goerr.V("path", path))
	}
	// One connection serializes writes and keeps an in-memory database alive
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db, deviceID: deviceID}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  device TEXT NOT NULL,
  key TEXT NOT NULL,
  value BLOB NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (device, key)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return goerr.Wrap(err, "failed to create entries table")
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key types.StorageKey) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM entries WHERE device = ? AND key = ?`,
		s.deviceID.String(), key.String(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get entry", goerr.V("key", key))
	}
	return value, nil
}

func (s *SQLite) Put(ctx context.Context, key types.StorageKey, value []byte) error {
	const stmt = `
INSERT INTO entries (device, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(device, key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, stmt,
		s.deviceID.String(),
		key.String(),
		value,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to put entry", goerr.V("key", key))
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key types.StorageKey) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM entries WHERE device = ? AND key = ?`,
		s.deviceID.String(), key.String(),
	); err != nil {
		return goerr.Wrap(err, "failed to delete entry", goerr.V("key", key))
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
