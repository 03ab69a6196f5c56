package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/tui/styles"
)

var homeSectionTitles = [homeSectionCount]string{
	"Trending Movies",
	"Popular Movies",
	"Trending TV Shows",
	"Popular TV Shows",
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.detailOpen {
		b.WriteString(m.renderDetail())
	} else {
		switch m.tab {
		case TabHome:
			b.WriteString(m.renderHome())
		case TabSearch:
			b.WriteString(m.renderSearch())
		case TabFavorites:
			b.WriteString(m.renderFavorites())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Home", "Search", "Favorites"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if Tab(i) == m.tab {
			tabs[i] = styles.TabActiveStyle.Render(name)
		} else {
			tabs[i] = styles.TabInactiveStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHome() string {
	if m.homeLoading {
		return styles.DimStyle.Render("Loading...")
	}
	if m.homeState.Err != nil {
		return styles.ErrorStyle.Render("Failed to load content: "+m.homeState.Err.Error()) +
			"\n" + styles.DimStyle.Render("Press r to retry")
	}

	var b strings.Builder
	title := fmt.Sprintf("%s (%d/%d)", homeSectionTitles[m.homeSection], m.homeSection+1, homeSectionCount)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render("←/→ switch section"))
	b.WriteString("\n\n")

	items := m.homeItems()
	if len(items) == 0 {
		b.WriteString(styles.DimStyle.Render("Nothing here right now"))
		return b.String()
	}
	b.WriteString(m.renderList(items, m.homeCursor))
	return b.String()
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	state := m.searchState
	switch {
	case state.Loading:
		b.WriteString(styles.DimStyle.Render("Searching..."))
	case state.Err != nil:
		b.WriteString(styles.ErrorStyle.Render("Search failed: " + state.Err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Press r to retry"))
	case !state.HasSearched:
		b.WriteString(styles.DimStyle.Render("Type to search"))
	case len(state.Movies) == 0 && len(state.TVShows) == 0:
		b.WriteString(styles.DimStyle.Render("No results for " + strings.TrimSpace(state.Query)))
	default:
		results := m.searchResults()
		if len(state.Movies) > 0 {
			b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Movies (%d)", len(state.Movies))))
			b.WriteString("\n")
			b.WriteString(m.renderListSlice(results, 0, len(state.Movies), m.searchCursor))
		}
		if len(state.TVShows) > 0 {
			if len(state.Movies) > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("TV Shows (%d)", len(state.TVShows))))
			b.WriteString("\n")
			b.WriteString(m.renderListSlice(results, len(state.Movies), len(results), m.searchCursor))
		}
	}
	return b.String()
}

func (m Model) renderFavorites() string {
	var b strings.Builder
	if m.filtering || m.favFilter.Value() != "" {
		b.WriteString(m.favFilter.View())
		b.WriteString("\n\n")
	}

	favs := m.filteredFavorites()
	if len(favs) == 0 {
		if len(m.favorites) == 0 {
			b.WriteString(styles.DimStyle.Render("No favorites yet. Press f on any title to add one."))
		} else {
			b.WriteString(styles.DimStyle.Render("No favorites match the filter"))
		}
		return b.String()
	}

	items := make([]domain.MediaSummary, len(favs))
	for i, f := range favs {
		items[i] = f.Summary()
	}
	b.WriteString(m.renderList(items, m.favCursor))
	return b.String()
}

// renderList renders summaries as a cursor list with heart markers.
func (m Model) renderList(items []domain.MediaSummary, cursor int) string {
	return m.renderListSlice(items, 0, len(items), cursor)
}

// renderListSlice renders items[start:end]; cursor indexes the full slice.
func (m Model) renderListSlice(items []domain.MediaSummary, start, end, cursor int) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		item := items[i]

		heart := styles.HeartEmpty
		if m.isFavorite(item.ID, item.Kind) {
			heart = styles.Heart
		}

		line := item.Title
		if year := item.Year(); year != "" {
			line += styles.DimStyle.Render(" (" + year + ")")
		}
		rating := styles.DimStyle.Render(" ★ " + item.FormattedRating())

		if i == cursor {
			b.WriteString(heart + " " + styles.SelectedStyle.Render(item.Title) + rating)
		} else {
			b.WriteString(heart + " " + line + rating)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	var b strings.Builder

	if m.detailLoading {
		return styles.DimStyle.Render("Loading details...")
	}
	if m.detailErr != "" {
		return styles.ErrorStyle.Render("Failed to load details: "+m.detailErr) +
			"\n" + styles.DimStyle.Render("Press r to retry, esc to go back")
	}
	if m.detail == nil {
		return styles.DimStyle.Render("Nothing to show")
	}

	d := m.detail

	heart := styles.HeartEmpty
	if m.isFavorite(d.ID, d.Kind) {
		heart = styles.Heart
	}

	b.WriteString(heart + " " + styles.TitleStyle.Render(d.Title))
	if year := d.Year(); year != "" {
		b.WriteString(styles.DimStyle.Render(" (" + year + ")"))
	}
	b.WriteString("\n")

	if d.Tagline != "" {
		b.WriteString(styles.SubtitleStyle.Render(d.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var facts []string
	facts = append(facts, "★ "+d.FormattedRating()+fmt.Sprintf(" (%d votes)", d.VoteCount))
	if d.Kind == domain.KindMovie {
		if rt := d.FormattedRuntime(); rt != "" {
			facts = append(facts, rt)
		}
	} else {
		if d.Seasons > 0 {
			facts = append(facts, fmt.Sprintf("%d seasons, %d episodes", d.Seasons, d.Episodes))
		}
	}
	if d.Status != "" {
		facts = append(facts, d.Status)
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")))
	b.WriteString("\n")

	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		b.WriteString(styles.DimStyle.Render(strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	if d.Overview != "" {
		b.WriteString("\n")
		b.WriteString(wrap(d.Overview, m.width-4))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return styles.ErrorStyle.Render(m.status)
	}

	var help string
	switch {
	case m.detailOpen:
		help = "f favorite · r retry · esc back · q quit"
	case m.tab == TabHome:
		help = "tab view · ←/→ section · enter details · f favorite · r retry · q quit"
	case m.tab == TabSearch:
		help = "tab view · / type · enter details · f favorite · r retry · q quit"
	default:
		help = "tab view · / filter · enter details · f unfavorite · q quit"
	}
	return styles.DimStyle.Render(help)
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for _, w := range words {
		if line > 0 && line+len(w)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
