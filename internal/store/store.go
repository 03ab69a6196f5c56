package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/kweston/marquee/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketFavorites = []byte("favorites")

// FavoriteStore persists favorites in BoltDB, keyed by (kind, id).
// It is the single source of truth for bookmark state: every mutation
// goes through Upsert/Remove, and watchers receive a fresh snapshot in
// write order after each change.
type FavoriteStore struct {
	db     *bolt.DB
	logger *slog.Logger

	// mu serializes writes so notifications go out in the order the
	// writes were applied.
	mu sync.Mutex

	subMu      sync.Mutex
	nextSubID  int
	watchers   map[int]*Watcher
	existsSubs map[int]*ExistsWatcher
}

// Open opens (or creates) the favorite store at dataDir/favorites.db.
// Opening the same directory repeatedly is safe.
func Open(dataDir string, logger *slog.Logger) (*FavoriteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "favorites.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FavoriteStore{
		db:         db,
		logger:     logger,
		watchers:   make(map[int]*Watcher),
		existsSubs: make(map[int]*ExistsWatcher),
	}, nil
}

func (s *FavoriteStore) Close() error {
	s.subMu.Lock()
	for _, w := range s.watchers {
		close(w.ch)
	}
	for _, w := range s.existsSubs {
		close(w.ch)
	}
	s.watchers = make(map[int]*Watcher)
	s.existsSubs = make(map[int]*ExistsWatcher)
	s.subMu.Unlock()

	return s.db.Close()
}

// favoriteKey is the composite bucket key: "movie:603", "tv:1399".
func favoriteKey(id int, kind domain.MediaKind) []byte {
	return []byte(fmt.Sprintf("%s:%d", kind, id))
}

// All returns every favorite, ordered by AddedAt descending.
func (s *FavoriteStore) All() ([]domain.Favorite, error) {
	var favs []domain.Favorite
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		return b.ForEach(func(k, v []byte) error {
			var f domain.Favorite
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("corrupt favorite record %q: %w", k, err)
			}
			favs = append(favs, f)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(favs, func(i, j int) bool {
		return favs[i].AddedAt > favs[j].AddedAt
	})
	return favs, nil
}

// ByKind returns the favorites of one kind, ordered by AddedAt descending.
func (s *FavoriteStore) ByKind(kind domain.MediaKind) ([]domain.Favorite, error) {
	favs, err := s.All()
	if err != nil {
		return nil, err
	}
	return domain.FilterFavoritesByKind(favs, kind), nil
}

// Exists reports whether (id, kind) is currently favorited.
func (s *FavoriteStore) Exists(id int, kind domain.MediaKind) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		found = b.Get(favoriteKey(id, kind)) != nil
		return nil
	})
	return found, err
}

// Upsert inserts or replaces the favorite under its composite key.
// A record that already exists keeps its original AddedAt; only the
// display fields (title, poster, rating) are refreshed. A zero AddedAt
// on a new record is assigned at insert time.
func (s *FavoriteStore) Upsert(fav domain.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		key := favoriteKey(fav.ID, fav.Kind)

		if prev := b.Get(key); prev != nil {
			var existing domain.Favorite
			if err := json.Unmarshal(prev, &existing); err == nil {
				fav.AddedAt = existing.AddedAt
			}
		}
		if fav.AddedAt == 0 {
			fav.AddedAt = time.Now().UnixMilli()
		}

		data, err := json.Marshal(fav)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to persist favorite: %w", err)
	}

	s.logger.Debug("favorite upserted", "id", fav.ID, "kind", fav.Kind.String())
	s.notifyLocked()
	return nil
}

// Remove deletes the favorite under (id, kind). Removing an absent key
// is a no-op.
func (s *FavoriteStore) Remove(id int, kind domain.MediaKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		key := favoriteKey(id, kind)
		if b.Get(key) == nil {
			return nil
		}
		removed = true
		return b.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if removed {
		s.logger.Debug("favorite removed", "id", id, "kind", kind.String())
		s.notifyLocked()
	}
	return nil
}

// notifyLocked pushes a fresh snapshot to every watcher. The caller
// holds s.mu, so snapshots reach the channels in write order.
func (s *FavoriteStore) notifyLocked() {
	favs, err := s.All()
	if err != nil {
		s.logger.Error("failed to read favorites for notification", "error", err)
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, w := range s.watchers {
		coalesce(w.ch, favs)
	}
	for _, w := range s.existsSubs {
		w.push(favs)
	}
}

// coalesce delivers v without ever blocking the writer: a slow
// subscriber sees only the latest snapshot.
func coalesce[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
