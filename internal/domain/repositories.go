package domain

import (
	"context"
)

// CatalogGateway provides read access to the remote media catalog.
// Every call fetches exactly one page; pages are 1-based.
type CatalogGateway interface {
	PopularMovies(ctx context.Context, page int) ([]MediaSummary, error)
	TopRatedMovies(ctx context.Context, page int) ([]MediaSummary, error)
	NowPlayingMovies(ctx context.Context, page int) ([]MediaSummary, error)
	TrendingMovies(ctx context.Context, page int) ([]MediaSummary, error)
	SearchMovies(ctx context.Context, text string, page int) ([]MediaSummary, error)

	PopularTVShows(ctx context.Context, page int) ([]MediaSummary, error)
	TopRatedTVShows(ctx context.Context, page int) ([]MediaSummary, error)
	TrendingTVShows(ctx context.Context, page int) ([]MediaSummary, error)
	SearchTVShows(ctx context.Context, text string, page int) ([]MediaSummary, error)

	MovieDetail(ctx context.Context, id int) (*MediaDetail, error)
	TVShowDetail(ctx context.Context, id int) (*MediaDetail, error)
}
