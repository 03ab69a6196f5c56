package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/log"
	"github.com/kweston/marquee/internal/store"
	"github.com/stretchr/testify/require"
)

// stubGateway answers every list call with the same page and every
// detail call with the same record, or fails everything with err.
type stubGateway struct {
	page   []domain.MediaSummary
	detail *domain.MediaDetail
	err    error

	lastSearch string
}

func (g *stubGateway) list() ([]domain.MediaSummary, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.page, nil
}

func (g *stubGateway) PopularMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) TopRatedMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) NowPlayingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) TrendingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) SearchMovies(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	g.lastSearch = text
	return g.list()
}

func (g *stubGateway) PopularTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) TopRatedTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) TrendingTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return g.list()
}

func (g *stubGateway) SearchTVShows(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	g.lastSearch = text
	return g.list()
}

func (g *stubGateway) MovieDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.detail, nil
}

func (g *stubGateway) TVShowDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.detail, nil
}

func newTestRepo(t *testing.T, gateway domain.CatalogGateway) *Repository {
	t.Helper()
	favorites, err := store.Open(t.TempDir(), log.NullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { favorites.Close() })
	return New(gateway, favorites, log.NullLogger())
}

func TestFetchersPassGatewayErrorsThrough(t *testing.T) {
	boom := errors.New("gateway down")
	repo := newTestRepo(t, &stubGateway{err: boom})
	ctx := context.Background()

	_, err := repo.PopularMovies(ctx, 1)
	require.ErrorIs(t, err, boom)

	_, err = repo.SearchTVShows(ctx, "matrix", 1)
	require.ErrorIs(t, err, boom)

	_, err = repo.Detail(ctx, 603, domain.KindMovie)
	require.ErrorIs(t, err, boom)
}

func TestFetchersReturnGatewayResults(t *testing.T) {
	page := []domain.MediaSummary{
		{ID: 603, Title: "The Matrix", Kind: domain.KindMovie},
	}
	repo := newTestRepo(t, &stubGateway{page: page})

	items, err := repo.TrendingMovies(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, page, items)
}

func TestDetailDispatchesByKind(t *testing.T) {
	movieDetail := &domain.MediaDetail{
		MediaSummary: domain.MediaSummary{ID: 603, Kind: domain.KindMovie},
	}
	repo := newTestRepo(t, &stubGateway{detail: movieDetail})
	ctx := context.Background()

	got, err := repo.Detail(ctx, 603, domain.KindMovie)
	require.NoError(t, err)
	require.Equal(t, movieDetail, got)

	got, err = repo.Detail(ctx, 1399, domain.KindTVShow)
	require.NoError(t, err)
	require.Equal(t, movieDetail, got)
}

func TestFavoriteRoundTrip(t *testing.T) {
	repo := newTestRepo(t, &stubGateway{})

	m := domain.MediaSummary{
		ID:          603,
		Title:       "The Matrix",
		PosterPath:  "/matrix.jpg",
		VoteAverage: 8.2,
		Kind:        domain.KindMovie,
	}
	require.NoError(t, repo.AddFavorite(domain.FavoriteFromSummary(m)))

	favs, err := repo.AllFavorites()
	require.NoError(t, err)
	require.Len(t, favs, 1)

	back := favs[0].Summary()
	require.Equal(t, m.ID, back.ID)
	require.Equal(t, m.Title, back.Title)
	require.Equal(t, m.PosterPath, back.PosterPath)
	require.Equal(t, m.VoteAverage, back.VoteAverage)
	require.Equal(t, m.Kind, back.Kind)
	require.NotNil(t, back.GenreIDs)
}

func TestToggleFavoriteFlipsState(t *testing.T) {
	repo := newTestRepo(t, &stubGateway{})
	m := domain.MediaSummary{ID: 603, Title: "The Matrix", Kind: domain.KindMovie}

	now, err := repo.ToggleFavorite(m)
	require.NoError(t, err)
	require.True(t, now)

	is, err := repo.IsFavorite(603, domain.KindMovie)
	require.NoError(t, err)
	require.True(t, is)

	now, err = repo.ToggleFavorite(m)
	require.NoError(t, err)
	require.False(t, now)

	is, err = repo.IsFavorite(603, domain.KindMovie)
	require.NoError(t, err)
	require.False(t, is)
}

func TestFavoritesByKind(t *testing.T) {
	repo := newTestRepo(t, &stubGateway{})

	require.NoError(t, repo.AddFavorite(domain.Favorite{ID: 603, Title: "The Matrix", Kind: domain.KindMovie}))
	require.NoError(t, repo.AddFavorite(domain.Favorite{ID: 1396, Title: "Breaking Bad", Kind: domain.KindTVShow}))

	shows, err := repo.FavoritesByKind(domain.KindTVShow)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	require.Equal(t, "Breaking Bad", shows[0].Title)
}

func TestWatchFavoritesSeesToggles(t *testing.T) {
	repo := newTestRepo(t, &stubGateway{})

	w, err := repo.WatchFavorites()
	require.NoError(t, err)
	defer w.Close()
	require.Empty(t, <-w.C())

	m := domain.MediaSummary{ID: 603, Title: "The Matrix", Kind: domain.KindMovie}
	_, err = repo.ToggleFavorite(m)
	require.NoError(t, err)
	require.Len(t, <-w.C(), 1)

	_, err = repo.ToggleFavorite(m)
	require.NoError(t, err)
	require.Empty(t, <-w.C())
}

func TestWatchFavoriteBooleanView(t *testing.T) {
	repo := newTestRepo(t, &stubGateway{})

	w, err := repo.WatchFavorite(603, domain.KindMovie)
	require.NoError(t, err)
	defer w.Close()
	require.False(t, <-w.C())

	require.NoError(t, repo.AddFavorite(domain.Favorite{ID: 603, Title: "The Matrix", Kind: domain.KindMovie}))
	require.True(t, <-w.C())
}
