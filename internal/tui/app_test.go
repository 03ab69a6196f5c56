package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/service"
	"github.com/stretchr/testify/require"
)

func testModel() Model {
	return Model{
		keys:        DefaultKeyMap(),
		searchInput: textinput.New(),
		favFilter:   textinput.New(),
		favSet:      make(map[favKey]struct{}),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func fav(id int, title string, kind domain.MediaKind) domain.Favorite {
	return domain.Favorite{ID: id, Title: title, Kind: kind}
}

func TestFavoritesChangedRebuildsHeartSet(t *testing.T) {
	m := testModel()

	m = update(t, m, FavoritesChangedMsg{Favorites: []domain.Favorite{
		fav(603, "The Matrix", domain.KindMovie),
		fav(1396, "Breaking Bad", domain.KindTVShow),
	}})

	require.True(t, m.isFavorite(603, domain.KindMovie))
	require.True(t, m.isFavorite(1396, domain.KindTVShow))
	require.False(t, m.isFavorite(603, domain.KindTVShow))

	m = update(t, m, FavoritesChangedMsg{Favorites: []domain.Favorite{
		fav(1396, "Breaking Bad", domain.KindTVShow),
	}})
	require.False(t, m.isFavorite(603, domain.KindMovie))
}

func TestHomeLoadedClampsCursor(t *testing.T) {
	m := testModel()
	m.homeLoading = true
	m.homeCursor = 10

	m = update(t, m, HomeLoadedMsg{State: service.HomeState{
		TrendingMovies: []domain.MediaSummary{{ID: 1, Title: "Dune", Kind: domain.KindMovie}},
	}})

	require.False(t, m.homeLoading)
	require.Equal(t, 0, m.homeCursor)
}

func TestSearchStateResetsCursorWhenResultsShrink(t *testing.T) {
	m := testModel()
	m.searchCursor = 5

	m = update(t, m, SearchStateMsg{State: service.SearchState{
		Movies:      []domain.MediaSummary{{ID: 603, Title: "The Matrix", Kind: domain.KindMovie}},
		HasSearched: true,
	}})

	require.Equal(t, 0, m.searchCursor)
}

func TestDetailErrorStaysInOverlay(t *testing.T) {
	m := testModel()
	m.detailOpen = true
	m.detailLoading = true

	m = update(t, m, ErrMsg{Err: errors.New("timeout"), Context: "loading details"})

	require.False(t, m.detailLoading)
	require.Equal(t, "timeout", m.detailErr)
	require.Empty(t, m.status)
}

func TestTabKeyCyclesViews(t *testing.T) {
	m := testModel()
	require.Equal(t, TabHome, m.tab)

	press := tea.KeyMsg{Type: tea.KeyTab}
	m = update(t, m, press)
	require.Equal(t, TabSearch, m.tab)
	m = update(t, m, press)
	require.Equal(t, TabFavorites, m.tab)
	m = update(t, m, press)
	require.Equal(t, TabHome, m.tab)
}

func TestHomeItemsFollowActiveSection(t *testing.T) {
	m := testModel()
	m.homeState = service.HomeState{
		TrendingMovies:  []domain.MediaSummary{{ID: 1, Title: "Dune"}},
		PopularTVShows:  []domain.MediaSummary{{ID: 2, Title: "Severance"}},
		PopularMovies:   []domain.MediaSummary{},
		TrendingTVShows: []domain.MediaSummary{},
	}

	m.homeSection = 0
	require.Equal(t, "Dune", m.homeItems()[0].Title)
	m.homeSection = 3
	require.Equal(t, "Severance", m.homeItems()[0].Title)
}

func TestSearchResultsConcatenateMoviesThenShows(t *testing.T) {
	m := testModel()
	m.searchState = service.SearchState{
		Movies:  []domain.MediaSummary{{ID: 1, Title: "Movie", Kind: domain.KindMovie}},
		TVShows: []domain.MediaSummary{{ID: 2, Title: "Show", Kind: domain.KindTVShow}},
	}

	results := m.searchResults()
	require.Len(t, results, 2)
	require.Equal(t, "Movie", results[0].Title)
	require.Equal(t, "Show", results[1].Title)
}

func TestFilteredFavorites(t *testing.T) {
	m := testModel()
	m.favorites = []domain.Favorite{
		fav(603, "The Matrix", domain.KindMovie),
		fav(1396, "Breaking Bad", domain.KindTVShow),
		fav(1398, "Better Call Saul", domain.KindTVShow),
	}

	require.Len(t, m.filteredFavorites(), 3, "no filter returns everything")

	m.favFilter.SetValue("matrix")
	filtered := m.filteredFavorites()
	require.Len(t, filtered, 1)
	require.Equal(t, 603, filtered[0].ID)

	m.favFilter.SetValue("zzzz")
	require.Empty(t, m.filteredFavorites())
}

func TestSelectedSummaryOnFavoritesTab(t *testing.T) {
	m := testModel()
	m.tab = TabFavorites
	m.favorites = []domain.Favorite{
		fav(603, "The Matrix", domain.KindMovie),
		fav(1396, "Breaking Bad", domain.KindTVShow),
	}
	m.favCursor = 1

	item, ok := m.selectedSummary()
	require.True(t, ok)
	require.Equal(t, 1396, item.ID)
	require.Equal(t, domain.KindTVShow, item.Kind)

	m.favCursor = 5
	_, ok = m.selectedSummary()
	require.False(t, ok)
}

func TestSelectedSummaryEmptyHome(t *testing.T) {
	m := testModel()
	_, ok := m.selectedSummary()
	require.False(t, ok)
}
