package service

import (
	"context"
	"log/slog"

	"github.com/kweston/marquee/internal/domain"
	"github.com/sourcegraph/conc"
)

// HomeCatalog is the slice of the repository the landing view needs.
type HomeCatalog interface {
	TrendingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error)
	PopularMovies(ctx context.Context, page int) ([]domain.MediaSummary, error)
	TrendingTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error)
	PopularTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error)
}

// HomeState is the landing view's aggregate snapshot. A category that
// failed shows as an empty list; Err is set only when every category
// failed.
type HomeState struct {
	TrendingMovies  []domain.MediaSummary
	PopularMovies   []domain.MediaSummary
	TrendingTVShows []domain.MediaSummary
	PopularTVShows  []domain.MediaSummary
	Err             error
}

// HomeLoader fans out the four landing-view fetches concurrently and
// reduces partial failures into a single state. A retry is simply
// another Load call; nothing is memoized.
type HomeLoader struct {
	repo   HomeCatalog
	logger *slog.Logger
}

// NewHomeLoader creates a loader over the given catalog surface.
func NewHomeLoader(repo HomeCatalog, logger *slog.Logger) *HomeLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeLoader{repo: repo, logger: logger}
}

type categoryResult struct {
	items []domain.MediaSummary
	err   error
}

// Load runs the four category fetches concurrently and waits for all
// of them to settle. The fetches have no ordering relationship with
// each other.
func (l *HomeLoader) Load(ctx context.Context) HomeState {
	var results [4]categoryResult

	fetches := [4]func(context.Context, int) ([]domain.MediaSummary, error){
		l.repo.TrendingMovies,
		l.repo.PopularMovies,
		l.repo.TrendingTVShows,
		l.repo.PopularTVShows,
	}

	var wg conc.WaitGroup
	for i, fetch := range fetches {
		wg.Go(func() {
			items, err := fetch(ctx, 1)
			results[i] = categoryResult{items: items, err: err}
		})
	}
	wg.Wait()

	state := reduceHome(results)
	if state.Err != nil {
		l.logger.Warn("all landing categories failed", "error", state.Err)
	}
	return state
}

// reduceHome folds the four category results into one state: each
// failed category downgrades to an empty list, and the aggregate error
// surfaces only when all four failed.
func reduceHome(results [4]categoryResult) HomeState {
	var firstErr error
	allFailed := true
	for _, r := range results {
		if r.err == nil {
			allFailed = false
		} else if firstErr == nil {
			firstErr = r.err
		}
	}

	state := HomeState{
		TrendingMovies:  results[0].settled(),
		PopularMovies:   results[1].settled(),
		TrendingTVShows: results[2].settled(),
		PopularTVShows:  results[3].settled(),
	}
	if allFailed {
		state.Err = firstErr
	}
	return state
}

// settled is the per-category policy: a failure yields an empty list.
func (r categoryResult) settled() []domain.MediaSummary {
	if r.err != nil {
		return []domain.MediaSummary{}
	}
	return orEmpty(r.items)
}
