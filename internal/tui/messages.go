package tui

import (
	"github.com/kweston/marquee/internal/domain"
	"github.com/kweston/marquee/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// HomeLoadedMsg signals that the landing categories have settled
type HomeLoadedMsg struct {
	State service.HomeState
}

// SearchStateMsg carries a fresh search snapshot from the controller
type SearchStateMsg struct {
	State service.SearchState
}

// FavoritesChangedMsg carries a fresh favorites snapshot from the store
type FavoritesChangedMsg struct {
	Favorites []domain.Favorite
}

// DetailLoadedMsg signals that a detail record has been fetched
type DetailLoadedMsg struct {
	Detail *domain.MediaDetail
}

// FavoriteToggledMsg signals that a bookmark was flipped
type FavoriteToggledMsg struct {
	ID   int
	Kind domain.MediaKind
	Now  bool
}
