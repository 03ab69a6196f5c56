package domain

// Favorite is a locally-persisted bookmark. It is uniquely identified
// by the composite key (ID, Kind): the same numeric id may be
// favorited once as a movie and once as a TV show, as distinct records.
type Favorite struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path,omitempty"`
	VoteAverage float64   `json:"vote_average"`
	Kind        MediaKind `json:"kind"`
	AddedAt     int64     `json:"added_at"` // Unix milliseconds
}

// FavoriteFromSummary builds a favorite from a list row. AddedAt is
// left zero; the store assigns it at insert time.
func FavoriteFromSummary(m MediaSummary) Favorite {
	return Favorite{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		Kind:        m.Kind,
	}
}

// Summary converts the favorite back into a displayable list row.
func (f Favorite) Summary() MediaSummary {
	return MediaSummary{
		ID:          f.ID,
		Title:       f.Title,
		PosterPath:  f.PosterPath,
		VoteAverage: f.VoteAverage,
		GenreIDs:    []int{},
		Kind:        f.Kind,
	}
}

// FilterFavoritesByKind returns the favorites of one kind, preserving order.
func FilterFavoritesByKind(favs []Favorite, kind MediaKind) []Favorite {
	filtered := make([]Favorite, 0, len(favs))
	for _, f := range favs {
		if f.Kind == kind {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
