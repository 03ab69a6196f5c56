package store

import (
	"github.com/kweston/marquee/internal/domain"
)

// Watcher is a live view over the full favorite set. Its channel
// carries a fresh snapshot (ordered AddedAt descending) after every
// write, starting with the state at subscription time. Deliveries are
// coalesced: a consumer that falls behind sees only the latest state.
type Watcher struct {
	ch chan []domain.Favorite
	s  *FavoriteStore
	id int
}

// C returns the snapshot channel.
func (w *Watcher) C() <-chan []domain.Favorite { return w.ch }

// Close unsubscribes the watcher and closes its channel.
func (w *Watcher) Close() {
	w.s.subMu.Lock()
	defer w.s.subMu.Unlock()
	if _, ok := w.s.watchers[w.id]; ok {
		delete(w.s.watchers, w.id)
		close(w.ch)
	}
}

// Watch subscribes to the favorite set. The current snapshot is
// delivered immediately.
func (s *FavoriteStore) Watch() (*Watcher, error) {
	favs, err := s.All()
	if err != nil {
		return nil, err
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	w := &Watcher{
		ch: make(chan []domain.Favorite, 1),
		s:  s,
		id: s.nextSubID,
	}
	w.ch <- favs
	s.watchers[w.id] = w
	return w, nil
}

// ExistsWatcher is a live boolean view over one composite key. Its
// channel carries the membership value at subscription time and every
// subsequent change; unchanged values are not re-delivered.
type ExistsWatcher struct {
	ch   chan bool
	s    *FavoriteStore
	id   int
	key  int
	kind domain.MediaKind
	last bool
}

// C returns the boolean channel.
func (w *ExistsWatcher) C() <-chan bool { return w.ch }

// Close unsubscribes the watcher and closes its channel.
func (w *ExistsWatcher) Close() {
	w.s.subMu.Lock()
	defer w.s.subMu.Unlock()
	if _, ok := w.s.existsSubs[w.id]; ok {
		delete(w.s.existsSubs, w.id)
		close(w.ch)
	}
}

// push recomputes membership from a snapshot and delivers it when it
// changed. Called with the store's subscriber lock held.
func (w *ExistsWatcher) push(favs []domain.Favorite) {
	exists := false
	for _, f := range favs {
		if f.ID == w.key && f.Kind == w.kind {
			exists = true
			break
		}
	}
	if exists == w.last {
		return
	}
	w.last = exists
	coalesce(w.ch, exists)
}

// WatchExists subscribes to the membership of one (id, kind) key. The
// current value is delivered immediately.
func (s *FavoriteStore) WatchExists(id int, kind domain.MediaKind) (*ExistsWatcher, error) {
	exists, err := s.Exists(id, kind)
	if err != nil {
		return nil, err
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	w := &ExistsWatcher{
		ch:   make(chan bool, 1),
		s:    s,
		id:   s.nextSubID,
		key:  id,
		kind: kind,
		last: exists,
	}
	w.ch <- exists
	s.existsSubs[w.id] = w
	return w, nil
}
