package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	// import the pure-Go SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

var ErrEmptyStoragePath = errors.New("sqlite storage path is empty")

type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyStoragePath
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// a single connection serializes the leaderboard rewrites
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	storage := &SQLiteStorage{Connection: conn}
	if err = storage.Init(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return storage, nil
}

func (that *SQLiteStorage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS leaderboard (
		position INTEGER NOT NULL PRIMARY KEY,
		name     TEXT    NOT NULL,
		wins     INTEGER NOT NULL DEFAULT 0,
		losses   INTEGER NOT NULL DEFAULT 0
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close sqlite connection: %w", err)
	}

	return nil
}
