package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteChannel stores each key as a row in a single kv table inside a
// local database file. This is the durable single-user backend, the
// closest analogue to the browser's local storage.
type SQLiteChannel struct {
	db   *sql.DB
	path string
}

func NewSQLiteChannel(path string) (*SQLiteChannel, error) {
	if path == "" {
		path = "erp.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteChannel{db: db, path: path}, nil
}

func (s *SQLiteChannel) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select kv: %w", err)
	}
	return value, nil
}

func (s *SQLiteChannel) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}

func (s *SQLiteChannel) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete kv: %w", err)
	}
	return nil
}

func (s *SQLiteChannel) Close() error {
	return s.db.Close()
}
