package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// FavoritesKey is the storage key holding the favorite ids as a JSON array
// of integers, e.g. [42,7,1001].
const FavoritesKey = "favorite-quotes"

// FavoritesStoreConfig contains configuration for the favorites store.
type FavoritesStoreConfig struct {
	Store  ports.KeyValueStore
	Logger *slog.Logger
}

// FavoritesStore owns the favorite id set.
//
// The set is loaded lazily on first use and kept in memory. Every mutation
// writes the whole set back before it returns; when that write fails the
// in-memory copy is left as it was, so memory and storage agree after every
// completed call. A mutex serializes mutate-and-save sequences.
type FavoritesStore struct {
	kv     ports.KeyValueStore
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	ids    domain.FavoriteIDSet
}

// NewFavoritesStore creates a favorites store.
// Panics if Store is nil. Defaults logger to slog.Default() if nil.
func NewFavoritesStore(cfg FavoritesStoreConfig) *FavoritesStore {
	if cfg.Store == nil {
		panic("FavoritesStore: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FavoritesStore{
		kv:     cfg.Store,
		logger: logger.With(slog.String("component", "favorites")),
	}
}

// Load reads the set from storage and replaces the in-memory copy.
// It never fails: a missing, unreadable or unparsable value yields an
// empty set. After a read error the store stays unloaded and reads again
// on next use, so a transient failure never reaches storage as an empty set.
func (s *FavoritesStore) Load(ctx context.Context) domain.FavoriteIDSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.loadLocked(ctx)

	return s.ids
}

// Save overwrites the stored set with ids.
func (s *FavoritesStore) Save(ctx context.Context, ids domain.FavoriteIDSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx, ids)
}

// List returns the current set.
func (s *FavoritesStore) List(ctx context.Context) domain.FavoriteIDSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.ensureLoaded(ctx)

	return s.ids
}

// Contains reports whether id is a favorite.
func (s *FavoritesStore) Contains(ctx context.Context, id int) bool {
	return s.List(ctx).Contains(id)
}

// Count returns the number of favorites.
func (s *FavoritesStore) Count(ctx context.Context) int {
	return s.List(ctx).Len()
}

// Add marks id as a favorite. Adding a member is a no-op and does not write.
func (s *FavoritesStore) Add(ctx context.Context, id int) (domain.FavoriteIDSet, error) {
	return s.mutate(ctx, "add", id, func(set domain.FavoriteIDSet) (domain.FavoriteIDSet, bool) {
		return set.Add(id)
	})
}

// Remove unmarks id. Removing a non-member is a no-op and does not write.
func (s *FavoritesStore) Remove(ctx context.Context, id int) (domain.FavoriteIDSet, error) {
	return s.mutate(ctx, "remove", id, func(set domain.FavoriteIDSet) (domain.FavoriteIDSet, bool) {
		return set.Remove(id)
	})
}

// Toggle flips membership of id and reports whether it is a favorite afterwards.
func (s *FavoritesStore) Toggle(ctx context.Context, id int) (domain.FavoriteIDSet, bool, error) {
	set, err := s.mutate(ctx, "toggle", id, func(set domain.FavoriteIDSet) (domain.FavoriteIDSet, bool) {
		next, _ := set.Toggle(id)
		return next, true
	})

	return set, set.Contains(id), err
}

func (s *FavoritesStore) mutate(
	ctx context.Context,
	op string,
	id int,
	fn func(domain.FavoriteIDSet) (domain.FavoriteIDSet, bool),
) (domain.FavoriteIDSet, error) {
	if id <= 0 {
		return domain.FavoriteIDSet{}, domain.NewValidationErrorWithValue("id", "must be a positive integer", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		s.logger.ErrorContext(ctx, "favorites not loaded, change refused",
			slog.String("op", op),
			slog.Int("quote_id", id),
			slog.Any("error", err))

		return s.ids, err
	}

	next, changed := fn(s.ids)
	if !changed {
		return s.ids, nil
	}

	if err := s.saveLocked(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "favorites not saved, change rolled back",
			slog.String("op", op),
			slog.Int("quote_id", id),
			slog.Any("error", err))

		return s.ids, err
	}

	s.logger.DebugContext(ctx, "favorites updated",
		slog.String("op", op),
		slog.Int("quote_id", id),
		slog.Int("count", next.Len()))

	return next, nil
}

// ensureLoaded must be called with the lock held.
func (s *FavoritesStore) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	return s.loadLocked(ctx)
}

// loadLocked must be called with the lock held. On a read error the
// in-memory set is empty and loaded stays false.
func (s *FavoritesStore) loadLocked(ctx context.Context) error {
	ids, err := s.read(ctx)
	s.ids = ids
	s.loaded = err == nil

	return err
}

// saveLocked must be called with the lock held. The in-memory copy only
// changes once the write succeeded.
func (s *FavoritesStore) saveLocked(ctx context.Context, ids domain.FavoriteIDSet) error {
	data, err := json.Marshal(ids.IDs())
	if err != nil {
		return domain.NewStorageError("encode", FavoritesKey, err)
	}

	if err := s.kv.Put(ctx, FavoritesKey, data); err != nil {
		if domain.IsStorage(err) {
			return err
		}
		return domain.NewStorageError("put", FavoritesKey, err)
	}

	s.ids = ids
	s.loaded = true

	return nil
}

// read returns an error only when storage could not be read. Absent and
// corrupt values are an empty set.
func (s *FavoritesStore) read(ctx context.Context) (domain.FavoriteIDSet, error) {
	data, err := s.kv.Get(ctx, FavoritesKey)
	if domain.IsNotFound(err) {
		return domain.FavoriteIDSet{}, nil
	}
	if err != nil {
		s.logger.WarnContext(ctx, "favorites unreadable, using empty set", slog.Any("error", err))
		if !domain.IsStorage(err) {
			err = domain.NewStorageError("get", FavoritesKey, err)
		}
		return domain.FavoriteIDSet{}, err
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.WarnContext(ctx, "favorites corrupt, starting empty",
			slog.Any("error", domain.NewStorageError("decode", FavoritesKey, err)))
		return domain.FavoriteIDSet{}, nil
	}

	return domain.NewFavoriteIDSet(ids...), nil
}
