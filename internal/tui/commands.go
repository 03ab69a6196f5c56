package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/repository"
	"github.com/kweston/marquee/internal/service"
)

// Command factories for async operations

// LoadHomeCmd runs the aggregated landing-view load
func LoadHomeCmd(loader *service.HomeLoader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return HomeLoadedMsg{State: loader.Load(ctx)}
	}
}

// LoadDetailCmd fetches the detail record for one title
func LoadDetailCmd(repo *repository.Repository, id int, kind domain.MediaKind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		detail, err := repo.Detail(ctx, id, kind)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading details"}
		}
		return DetailLoadedMsg{Detail: detail}
	}
}

// ToggleFavoriteCmd flips the bookmark state for a title
func ToggleFavoriteCmd(repo *repository.Repository, m domain.MediaSummary) tea.Cmd {
	return func() tea.Msg {
		now, err := repo.ToggleFavorite(m)
		if err != nil {
			return ErrMsg{Err: err, Context: "toggling favorite"}
		}
		return FavoriteToggledMsg{ID: m.ID, Kind: m.Kind, Now: now}
	}
}

// WaitForSearchCmd blocks on the search controller's updates channel
// and re-arms itself after every message.
func WaitForSearchCmd(ch <-chan service.SearchState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return SearchStateMsg{State: state}
	}
}

// WaitForFavoritesCmd blocks on the favorite store watcher and re-arms
// itself after every snapshot.
func WaitForFavoritesCmd(ch <-chan []domain.Favorite) tea.Cmd {
	return func() tea.Msg {
		favs, ok := <-ch
		if !ok {
			return nil
		}
		return FavoritesChangedMsg{Favorites: favs}
	}
}
