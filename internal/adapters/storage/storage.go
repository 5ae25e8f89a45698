// Package storage provides the durable key-value stores behind favorites.
//
// Two drivers are available:
//   - file: one file per key under a directory, replaced atomically
//   - sqlite: a single kv table in a SQLite database
//
// Both implement ports.KeyValueStore and ports.HealthChecker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/config"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// Driver names accepted by New.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

const checkName = "storage"

// ErrUnknownDriver is returned by New for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is a key-value store that can report its health and be closed.
type Store interface {
	ports.KeyValueStore
	ports.HealthChecker
	io.Closer
}

// New opens the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Dir, logger)
	case DriverSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// validateKey rejects keys that could escape the store's namespace.
func validateKey(key string) error {
	if key == "" {
		return domain.NewValidationError("key", "is required")
	}

	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return domain.NewValidationErrorWithValue("key", "may only contain letters, digits, '-', '_' and '.'", key)
		}
	}

	if strings.Trim(key, ".") == "" {
		return domain.NewValidationErrorWithValue("key", "must not be only dots", key)
	}

	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
