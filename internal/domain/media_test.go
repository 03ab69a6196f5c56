package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaKindRoundTrip(t *testing.T) {
	for _, kind := range []MediaKind{KindMovie, KindTVShow} {
		parsed, err := ParseMediaKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	_, err := ParseMediaKind("radio")
	require.Error(t, err)
}

func TestYear(t *testing.T) {
	require.Equal(t, "1999", MediaSummary{ReleaseDate: "1999-03-31"}.Year())
	require.Equal(t, "", MediaSummary{ReleaseDate: ""}.Year())
	require.Equal(t, "", MediaSummary{ReleaseDate: "99"}.Year())
}

func TestFormattedRating(t *testing.T) {
	require.Equal(t, "8.2", MediaSummary{VoteAverage: 8.24}.FormattedRating())
	require.Equal(t, "0.0", MediaSummary{}.FormattedRating())
}

func TestFormattedRuntime(t *testing.T) {
	require.Equal(t, "2h 16m", MediaDetail{Runtime: 136}.FormattedRuntime())
	require.Equal(t, "45m", MediaDetail{Runtime: 45}.FormattedRuntime())
	require.Equal(t, "", MediaDetail{}.FormattedRuntime())
}

func TestFilterFavoritesByKind(t *testing.T) {
	favs := []Favorite{
		{ID: 1, Kind: KindMovie},
		{ID: 2, Kind: KindTVShow},
		{ID: 3, Kind: KindMovie},
	}

	movies := FilterFavoritesByKind(favs, KindMovie)
	require.Len(t, movies, 2)
	require.Equal(t, 1, movies[0].ID)
	require.Equal(t, 3, movies[1].ID)

	require.Empty(t, FilterFavoritesByKind(nil, KindMovie))
}

func TestFavoriteFromSummaryLeavesAddedAtZero(t *testing.T) {
	f := FavoriteFromSummary(MediaSummary{ID: 603, Title: "The Matrix", Kind: KindMovie})
	require.Zero(t, f.AddedAt)
	require.Equal(t, KindMovie, f.Kind)
}
