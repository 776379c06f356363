package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/bnema/account-keeper/internal/ports"
	_ "modernc.org/sqlite"
)

const dataDirMode = 0o700

// Store keeps key/value pairs in a single table of a SQLite database file.
type Store struct {
	db *sql.DB
}

var _ ports.KeyValueStore = (*Store)(nil)

var errEmptyKey = errors.New("storage key is empty")

// Open creates the database file and its kv table when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), dataDirMode); err != nil {
		return nil, fmt.Errorf("create sqlite data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Single connection to prevent lock contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createKVTable(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

func createKVTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errEmptyKey
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("sqlite key %q: %w", key, domain.ErrKeyNotFound)
		}
		return "", fmt.Errorf("query sqlite key %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	query := `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("write sqlite key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete sqlite key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
