package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/repository"
	"github.com/kweston/marquee/internal/service"
	"github.com/kweston/marquee/internal/tui/styles"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Tab identifies one of the top-level views
type Tab int

const (
	TabHome Tab = iota
	TabSearch
	TabFavorites
)

// homeSectionCount is the number of category rows on the landing view
const homeSectionCount = 4

type favKey struct {
	id   int
	kind domain.MediaKind
}

// Model is the main Bubble Tea model for the application. It talks
// only to the repository, the search controller and the home loader;
// the gateway and the store stay behind them.
type Model struct {
	repo   *repository.Repository
	search *service.SearchController
	home   *service.HomeLoader
	keys   KeyMap

	width  int
	height int
	tab    Tab

	// Home
	homeLoading bool
	homeState   service.HomeState
	homeSection int
	homeCursor  int

	// Search
	searchInput   textinput.Model
	searchFocused bool
	searchState   service.SearchState
	searchCursor  int

	// Favorites
	favorites []domain.Favorite
	favFilter textinput.Model
	filtering bool
	favCursor int

	// Live favorite membership, driving the heart markers on every tab
	favSet map[favKey]struct{}

	// Channels bridged into the tea loop
	searchCh <-chan service.SearchState
	favCh    <-chan []domain.Favorite

	// Detail overlay
	detailOpen    bool
	detailLoading bool
	detail        *domain.MediaDetail
	detailErr     string
	detailFor     domain.MediaSummary

	status string
}

// NewModel creates the application model.
func NewModel(
	repo *repository.Repository,
	search *service.SearchController,
	home *service.HomeLoader,
	favCh <-chan []domain.Favorite,
) Model {
	si := textinput.New()
	si.Placeholder = "Search movies and TV shows..."
	si.CharLimit = 100
	si.Prompt = "/ "
	si.PromptStyle = styles.AccentStyle

	ff := textinput.New()
	ff.Placeholder = "Filter favorites..."
	ff.CharLimit = 60
	ff.Prompt = "/ "
	ff.PromptStyle = styles.AccentStyle

	return Model{
		repo:        repo,
		search:      search,
		home:        home,
		keys:        DefaultKeyMap(),
		homeLoading: true,
		searchInput: si,
		favFilter:   ff,
		favSet:      make(map[favKey]struct{}),
		searchCh:    search.Updates(),
		favCh:       favCh,
	}
}

// Init kicks off the landing load and arms the channel observers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadHomeCmd(m.home),
		WaitForSearchCmd(m.searchCh),
		WaitForFavoritesCmd(m.favCh),
		textinput.Blink,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 8
		m.favFilter.Width = msg.Width - 8
		return m, nil

	case HomeLoadedMsg:
		m.homeLoading = false
		m.homeState = msg.State
		m.clampHomeCursor()
		return m, nil

	case SearchStateMsg:
		m.searchState = msg.State
		if m.searchCursor >= len(m.searchResults()) {
			m.searchCursor = 0
		}
		return m, WaitForSearchCmd(m.searchCh)

	case FavoritesChangedMsg:
		m.favorites = msg.Favorites
		m.favSet = make(map[favKey]struct{}, len(msg.Favorites))
		for _, f := range msg.Favorites {
			m.favSet[favKey{f.ID, f.Kind}] = struct{}{}
		}
		if m.favCursor >= len(m.filteredFavorites()) {
			m.favCursor = 0
		}
		return m, WaitForFavoritesCmd(m.favCh)

	case DetailLoadedMsg:
		m.detailLoading = false
		m.detail = msg.Detail
		m.detailErr = ""
		return m, nil

	case FavoriteToggledMsg:
		// The store watcher delivers the authoritative snapshot; nothing
		// to apply here.
		return m, nil

	case ErrMsg:
		if msg.Context == "loading details" {
			m.detailLoading = false
			m.detailErr = msg.Err.Error()
			return m, nil
		}
		m.status = msg.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a keypress based on the active view and focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing into the search box
	if m.tab == TabSearch && m.searchFocused && !m.detailOpen {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Down):
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.search.SetQuery(m.searchInput.Value())
			return m, cmd
		}
	}

	// Typing into the favorites filter
	if m.tab == TabFavorites && m.filtering && !m.detailOpen {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.filtering = false
			m.favFilter.Blur()
			m.favFilter.SetValue("")
			m.favCursor = 0
			return m, nil
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Down):
			m.filtering = false
			m.favFilter.Blur()
			return m, nil
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.favFilter, cmd = m.favFilter.Update(msg)
			m.favCursor = 0
			return m, cmd
		}
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Detail overlay
	if m.detailOpen {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.detailOpen = false
			m.detail = nil
			m.detailErr = ""
			return m, nil
		case key.Matches(msg, m.keys.Favorite):
			return m, ToggleFavoriteCmd(m.repo, m.detailSummary())
		case key.Matches(msg, m.keys.Refresh):
			m.detailLoading = true
			m.detailErr = ""
			return m, LoadDetailCmd(m.repo, m.detailFor.ID, m.detailFor.Kind)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % 3
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.status = ""
		return m, nil
	}

	switch m.tab {
	case TabHome:
		return m.handleHomeKey(msg)
	case TabSearch:
		return m.handleSearchKey(msg)
	case TabFavorites:
		return m.handleFavoritesKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.homeSection > 0 {
			m.homeSection--
			m.homeCursor = 0
		}
	case key.Matches(msg, m.keys.Right):
		if m.homeSection < homeSectionCount-1 {
			m.homeSection++
			m.homeCursor = 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(m.homeItems())-1 {
			m.homeCursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.homeLoading = true
		return m, LoadHomeCmd(m.home)
	case key.Matches(msg, m.keys.Favorite):
		if item, ok := m.selectedSummary(); ok {
			return m, ToggleFavoriteCmd(m.repo, item)
		}
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.selectedSummary(); ok {
			return m.openDetail(item)
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		if m.searchCursor > 0 {
			m.searchCursor--
		} else {
			m.searchFocused = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Down):
		if m.searchCursor < len(m.searchResults())-1 {
			m.searchCursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.search.Retry()
	case key.Matches(msg, m.keys.Favorite):
		if item, ok := m.selectedSummary(); ok {
			return m, ToggleFavoriteCmd(m.repo, item)
		}
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.selectedSummary(); ok {
			return m.openDetail(item)
		}
	}
	return m, nil
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.favFilter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		if m.favCursor > 0 {
			m.favCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favCursor < len(m.filteredFavorites())-1 {
			m.favCursor++
		}
	case key.Matches(msg, m.keys.Favorite):
		if item, ok := m.selectedSummary(); ok {
			return m, ToggleFavoriteCmd(m.repo, item)
		}
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.selectedSummary(); ok {
			return m.openDetail(item)
		}
	}
	return m, nil
}

func (m Model) openDetail(item domain.MediaSummary) (tea.Model, tea.Cmd) {
	m.detailOpen = true
	m.detailLoading = true
	m.detail = nil
	m.detailErr = ""
	m.detailFor = item
	return m, LoadDetailCmd(m.repo, item.ID, item.Kind)
}

// detailSummary returns the summary behind the open detail overlay,
// preferring the freshly fetched record.
func (m Model) detailSummary() domain.MediaSummary {
	if m.detail != nil {
		return m.detail.MediaSummary
	}
	return m.detailFor
}

// homeItems returns the items of the active landing section.
func (m Model) homeItems() []domain.MediaSummary {
	switch m.homeSection {
	case 0:
		return m.homeState.TrendingMovies
	case 1:
		return m.homeState.PopularMovies
	case 2:
		return m.homeState.TrendingTVShows
	default:
		return m.homeState.PopularTVShows
	}
}

func (m *Model) clampHomeCursor() {
	if n := len(m.homeItems()); m.homeCursor >= n {
		m.homeCursor = 0
	}
}

// searchResults returns movie results followed by TV results.
func (m Model) searchResults() []domain.MediaSummary {
	results := make([]domain.MediaSummary, 0, len(m.searchState.Movies)+len(m.searchState.TVShows))
	results = append(results, m.searchState.Movies...)
	results = append(results, m.searchState.TVShows...)
	return results
}

// filteredFavorites applies the fuzzy filter to the favorites list.
func (m Model) filteredFavorites() []domain.Favorite {
	query := m.favFilter.Value()
	if query == "" {
		return m.favorites
	}

	titles := make([]string, len(m.favorites))
	for i, f := range m.favorites {
		titles[i] = f.Title
	}

	matches := fuzzy.RankFindFold(query, titles)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	byTitle := make(map[string]domain.Favorite, len(m.favorites))
	for _, f := range m.favorites {
		if _, ok := byTitle[f.Title]; !ok {
			byTitle[f.Title] = f
		}
	}

	filtered := make([]domain.Favorite, 0, len(matches))
	seen := make(map[favKey]struct{}, len(matches))
	for _, match := range matches {
		f, ok := byTitle[match.Target]
		if !ok {
			continue
		}
		k := favKey{f.ID, f.Kind}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		filtered = append(filtered, f)
	}
	return filtered
}

// selectedSummary resolves the highlighted item on the active view.
func (m Model) selectedSummary() (domain.MediaSummary, bool) {
	switch m.tab {
	case TabHome:
		items := m.homeItems()
		if m.homeCursor < len(items) {
			return items[m.homeCursor], true
		}
	case TabSearch:
		results := m.searchResults()
		if m.searchCursor < len(results) {
			return results[m.searchCursor], true
		}
	case TabFavorites:
		favs := m.filteredFavorites()
		if m.favCursor < len(favs) {
			return favs[m.favCursor].Summary(), true
		}
	}
	return domain.MediaSummary{}, false
}

// isFavorite consults the live membership set behind the heart markers.
func (m Model) isFavorite(id int, kind domain.MediaKind) bool {
	_, ok := m.favSet[favKey{id, kind}]
	return ok
}
