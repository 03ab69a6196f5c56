package repository

import (
	"context"
	"log/slog"

	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/store"
)

// Repository is the single surface the presentation layer talks to.
// It composes the remote catalog gateway with the local favorite store:
// fetchers wrap exactly one gateway call each and pass failures through
// unchanged, favorite operations delegate to the store. Fetchers are
// read-only; AddFavorite and RemoveFavorite are the only operations
// that mutate persisted state, and once invoked they run to completion.
type Repository struct {
	gateway   domain.CatalogGateway
	favorites *store.FavoriteStore
	logger    *slog.Logger
}

// New creates a repository over the given gateway and favorite store.
func New(gateway domain.CatalogGateway, favorites *store.FavoriteStore, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		gateway:   gateway,
		favorites: favorites,
		logger:    logger,
	}
}

// === Category fetchers ===

func (r *Repository) PopularMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.PopularMovies(ctx, page)
}

func (r *Repository) TopRatedMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.TopRatedMovies(ctx, page)
}

func (r *Repository) NowPlayingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.NowPlayingMovies(ctx, page)
}

func (r *Repository) TrendingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.TrendingMovies(ctx, page)
}

func (r *Repository) PopularTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.PopularTVShows(ctx, page)
}

func (r *Repository) TopRatedTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.TopRatedTVShows(ctx, page)
}

func (r *Repository) TrendingTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return r.gateway.TrendingTVShows(ctx, page)
}

// === Search ===

func (r *Repository) SearchMovies(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	return r.gateway.SearchMovies(ctx, text, page)
}

func (r *Repository) SearchTVShows(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	return r.gateway.SearchTVShows(ctx, text, page)
}

// === Details (fetched per view, never cached) ===

func (r *Repository) MovieDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	return r.gateway.MovieDetail(ctx, id)
}

func (r *Repository) TVShowDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	return r.gateway.TVShowDetail(ctx, id)
}

// Detail fetches the detail record for a summary of either kind.
func (r *Repository) Detail(ctx context.Context, id int, kind domain.MediaKind) (*domain.MediaDetail, error) {
	if kind == domain.KindTVShow {
		return r.gateway.TVShowDetail(ctx, id)
	}
	return r.gateway.MovieDetail(ctx, id)
}

// === Favorites ===

// AllFavorites returns the current favorites, newest first.
func (r *Repository) AllFavorites() ([]domain.Favorite, error) {
	return r.favorites.All()
}

// FavoritesByKind returns the current favorites of one kind, newest first.
func (r *Repository) FavoritesByKind(kind domain.MediaKind) ([]domain.Favorite, error) {
	return r.favorites.ByKind(kind)
}

// IsFavorite reports whether (id, kind) is currently favorited.
func (r *Repository) IsFavorite(id int, kind domain.MediaKind) (bool, error) {
	return r.favorites.Exists(id, kind)
}

// WatchFavorites returns a live view over the whole favorite set.
func (r *Repository) WatchFavorites() (*store.Watcher, error) {
	return r.favorites.Watch()
}

// WatchFavorite returns a live boolean view over one composite key.
func (r *Repository) WatchFavorite(id int, kind domain.MediaKind) (*store.ExistsWatcher, error) {
	return r.favorites.WatchExists(id, kind)
}

// AddFavorite persists a bookmark.
func (r *Repository) AddFavorite(fav domain.Favorite) error {
	return r.favorites.Upsert(fav)
}

// RemoveFavorite deletes a bookmark. Absent keys are a no-op.
func (r *Repository) RemoveFavorite(id int, kind domain.MediaKind) error {
	return r.favorites.Remove(id, kind)
}

// ToggleFavorite flips the bookmark state for a summary and reports the
// new state.
func (r *Repository) ToggleFavorite(m domain.MediaSummary) (bool, error) {
	exists, err := r.favorites.Exists(m.ID, m.Kind)
	if err != nil {
		return false, err
	}
	if exists {
		if err := r.favorites.Remove(m.ID, m.Kind); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := r.favorites.Upsert(domain.FavoriteFromSummary(m)); err != nil {
		return false, err
	}
	return true, nil
}
