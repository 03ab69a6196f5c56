package tmdb

import (
	"testing"

	"github.com/kweston/marquee/internal/domain"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestMapMovieDefaultsMissingFields(t *testing.T) {
	items, err := MapMovies([]movieDTO{{
		ID:          intPtr(603),
		Title:       "The Matrix",
		VoteAverage: 8.2,
		VoteCount:   25000,
		Popularity:  91.5,
	}})
	require.NoError(t, err)
	require.Len(t, items, 1)

	m := items[0]
	require.Equal(t, 603, m.ID)
	require.Equal(t, domain.KindMovie, m.Kind)
	require.Equal(t, "", m.Overview)
	require.Equal(t, "", m.ReleaseDate)
	require.Equal(t, "", m.PosterPath)
	require.NotNil(t, m.GenreIDs)
	require.Empty(t, m.GenreIDs)
}

func TestMapMoviePreservesPresentFields(t *testing.T) {
	items, err := MapMovies([]movieDTO{{
		ID:           intPtr(603),
		Title:        "The Matrix",
		Overview:     strPtr("A hacker learns the truth."),
		PosterPath:   strPtr("/matrix.jpg"),
		BackdropPath: strPtr("/matrix-wide.jpg"),
		VoteAverage:  8.2,
		VoteCount:    25000,
		ReleaseDate:  strPtr("1999-03-31"),
		GenreIDs:     []int{28, 878},
		Popularity:   91.5,
	}})
	require.NoError(t, err)

	m := items[0]
	require.Equal(t, "A hacker learns the truth.", m.Overview)
	require.Equal(t, "/matrix.jpg", m.PosterPath)
	require.Equal(t, "/matrix-wide.jpg", m.BackdropPath)
	require.Equal(t, "1999-03-31", m.ReleaseDate)
	require.Equal(t, []int{28, 878}, m.GenreIDs)
	require.Equal(t, "1999", m.Year())
}

func TestMapTVShowDefaultsMissingFields(t *testing.T) {
	items, err := MapTVShows([]tvShowDTO{{
		ID:   intPtr(1399),
		Name: "Game of Thrones",
	}})
	require.NoError(t, err)
	require.Len(t, items, 1)

	s := items[0]
	require.Equal(t, domain.KindTVShow, s.Kind)
	require.Equal(t, "Game of Thrones", s.Title)
	require.Equal(t, "", s.Overview)
	require.Equal(t, "", s.ReleaseDate)
	require.NotNil(t, s.GenreIDs)
	require.Empty(t, s.GenreIDs)
}

func TestMapMovieRejectsMissingID(t *testing.T) {
	_, err := MapMovies([]movieDTO{{Title: "No ID"}})
	require.ErrorIs(t, err, domain.ErrMalformedPayload)

	_, err = MapTVShows([]tvShowDTO{{Name: "No ID"}})
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestMapMovieDetail(t *testing.T) {
	detail, err := MapMovieDetail(movieDetailDTO{
		ID:          intPtr(603),
		Title:       "The Matrix",
		ReleaseDate: strPtr("1999-03-31"),
		Runtime:     intPtr(136),
		Genres:      []genreDTO{{ID: 28, Name: "Action"}},
		Status:      strPtr("Released"),
		Tagline:     strPtr("Welcome to the Real World."),
	})
	require.NoError(t, err)
	require.Equal(t, domain.KindMovie, detail.Kind)
	require.Equal(t, 136, detail.Runtime)
	require.Equal(t, "2h 16m", detail.FormattedRuntime())
	require.Equal(t, []domain.Genre{{ID: 28, Name: "Action"}}, detail.Genres)
	require.Equal(t, "Welcome to the Real World.", detail.Tagline)
}

func TestMapTVShowDetailDefaults(t *testing.T) {
	detail, err := MapTVShowDetail(tvShowDetailDTO{
		ID:   intPtr(1399),
		Name: "Game of Thrones",
	})
	require.NoError(t, err)
	require.Equal(t, domain.KindTVShow, detail.Kind)
	require.Zero(t, detail.Seasons)
	require.Zero(t, detail.Episodes)
	require.Equal(t, "", detail.Status)
	require.Equal(t, "", detail.Tagline)
	require.Empty(t, detail.Genres)
}
