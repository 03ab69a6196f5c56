package domain

import "fmt"

// MediaKind distinguishes a movie from a TV show.
// It is part of every favorite's identity.
type MediaKind int

const (
	KindMovie MediaKind = iota
	KindTVShow
)

// String returns the stable storage name of the kind.
func (k MediaKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindTVShow:
		return "tv"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseMediaKind converts a stored kind name back to a MediaKind.
func ParseMediaKind(s string) (MediaKind, error) {
	switch s {
	case "movie":
		return KindMovie, nil
	case "tv":
		return KindTVShow, nil
	default:
		return 0, fmt.Errorf("unknown media kind %q", s)
	}
}

// MediaSummary is one row of a list, search or trending response.
// Optional wire fields are normalized at the gateway boundary:
// Overview and ReleaseDate default to "" and GenreIDs to an empty
// slice, so consumers never see a nil where a value is declared.
type MediaSummary struct {
	ID           int
	Title        string
	Overview     string
	PosterPath   string // Empty when the source has no poster
	BackdropPath string // Empty when the source has no backdrop
	VoteAverage  float64
	VoteCount    int
	ReleaseDate  string // Release date for movies, first air date for shows
	GenreIDs     []int
	Popularity   float64
	Kind         MediaKind
}

// Year returns the four-digit year of the release date, or "" when unknown.
func (m MediaSummary) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// FormattedRating returns the vote average as a one-decimal string.
func (m MediaSummary) FormattedRating() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// Genre is a named genre from a detail response.
type Genre struct {
	ID   int
	Name string
}

// MediaDetail is the full record behind a summary, fetched lazily per
// detail view and never cached between navigations.
type MediaDetail struct {
	MediaSummary

	Runtime  int // Minutes; movies only
	Seasons  int // TV shows only
	Episodes int // TV shows only

	LastAirDate string // TV shows only
	Genres      []Genre
	Status      string
	Tagline     string
}

// FormattedRuntime returns the runtime in a human-readable format.
func (d MediaDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
