package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
)

const (
	memoryDSN = ":memory:"

	schema = `
CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      BLOB,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	upsertQuery = `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	selectQuery = `SELECT value FROM kv WHERE key = ?`
)

// SQLiteStore keeps keys in a single kv table.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and
// migrates the schema. A leading "~" is expanded; ":memory:" opens a
// private in-memory database.
func NewSQLiteStore(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn, resolved, err := sqliteDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite serializes writers anyway; one connection also keeps an
	// in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}

	logger.Debug("sqlite store opened", slog.String("path", resolved))

	return &SQLiteStore{db: db, path: resolved, logger: logger}, nil
}

func sqliteDSN(path string) (dsn, resolved string, err error) {
	if strings.TrimSpace(path) == memoryDSN {
		return memoryDSN, memoryDSN, nil
	}

	resolved, err = expandPath(path)
	if err != nil {
		return "", "", fmt.Errorf("resolve sqlite path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), dirPerm); err != nil {
		return "", "", fmt.Errorf("create sqlite dir: %w", err)
	}

	return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", resolved), resolved, nil
}

// Get implements ports.KeyValueStore.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, selectQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("key", key)
		}
		return nil, domain.NewStorageError("get", key, err)
	}

	return value, nil
}

// Put implements ports.KeyValueStore.
func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return domain.NewStorageError("put", key, err)
	}

	s.logger.Log(ctx, logging.LevelTrace, "value written",
		slog.String("key", key),
		slog.Int("bytes", len(value)))

	return nil
}

// Name implements ports.HealthChecker.
func (s *SQLiteStore) Name() string {
	return checkName
}

// Check pings the database.
// Implements ports.HealthChecker.
func (s *SQLiteStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
