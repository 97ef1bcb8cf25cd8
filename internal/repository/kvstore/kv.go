package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// KV is a sqlite-backed implementation of ports.KV. It plays the role the
// browser's local storage played in the original client: string keys mapped
// to JSON documents, last write wins per key, with the addition of real
// transactions for multi-key transitions.
type KV struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the store at path. ":memory:" yields an
// ephemeral store, which the tests use.
func Open(path string) (*KV, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("kvstore: create directory: %w", err)
			}
		}
	}

	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("kvstore: open: %w", err)
	}
	// modernc/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY churn under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kvstore: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}
	return &KV{db: db}, nil
}

func (s *KV) Close() error {
	return s.db.Close()
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return get(ctx, s.db, key)
}

func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	return put(ctx, s.db, key, value)
}

func (s *KV) Delete(ctx context.Context, key string) error {
	return del(ctx, s.db, key)
}

// Tx runs fn inside a sqlite transaction, rolling back on error or panic.
func (s *KV) Tx(ctx context.Context, fn func(tx ports.KVTx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kvstore: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&kvTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kvstore: commit: %w", err)
	}
	return nil
}

type kvTx struct {
	tx *sqlx.Tx
}

func (t *kvTx) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return get(ctx, t.tx, key)
}

func (t *kvTx) Put(ctx context.Context, key string, value []byte) error {
	return put(ctx, t.tx, key, value)
}

func (t *kvTx) Delete(ctx context.Context, key string) error {
	return del(ctx, t.tx, key)
}

type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func get(ctx context.Context, q querier, key string) ([]byte, bool, error) {
	var value string
	err := q.GetContext(ctx, &value, `SELECT value FROM kv_entries WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func put(ctx context.Context, q querier, key string, value []byte) error {
	const query = `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT (key) DO UPDATE
        SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
    `
	if _, err := q.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("kvstore: put %q: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, q querier, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kvstore: delete %q: %w", key, err)
	}
	return nil
}
