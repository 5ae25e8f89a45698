package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	fileExt  = ".json"
)

// FileStore keeps each key in its own file.
// Writes go to a temp file in the same directory and are renamed over the
// target, so a reader never observes a half-written value.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewFileStore creates the directory if needed. A leading "~" is expanded.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolved, err := expandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve storage dir: %w", err)
	}

	if err := os.MkdirAll(resolved, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	logger.Debug("file store opened", slog.String("dir", resolved))

	return &FileStore{dir: resolved, logger: logger}, nil
}

// Dir returns the resolved storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get implements ports.KeyValueStore.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewNotFoundError("key", key)
		}
		return nil, domain.NewStorageError("get", key, err)
	}

	return data, nil
}

// Put implements ports.KeyValueStore.
func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("put", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(s.path(key), value); err != nil {
		return domain.NewStorageError("put", key, err)
	}

	s.logger.Log(ctx, logging.LevelTrace, "value written",
		slog.String("key", key),
		slog.Int("bytes", len(value)))

	return nil
}

func (s *FileStore) writeAtomic(target string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return cause
	}

	if _, err := tmp.Write(value); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

// Name implements ports.HealthChecker.
func (s *FileStore) Name() string {
	return checkName
}

// Check verifies the storage directory still exists.
// Implements ports.HealthChecker.
func (s *FileStore) Check(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat storage dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %q is not a directory", s.dir)
	}

	return nil
}

// Close implements io.Closer. The file store holds no open handles.
func (s *FileStore) Close() error {
	return nil
}
