package tmdb

import (
	"github.com/kweston/marquee/internal/domain"
)

// The mappers are the single defaulting boundary: null or absent wire
// fields become empty domain values here, so no downstream component
// ever re-checks for nil. A record without an id is rejected loudly.

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// MapMovies converts movie rows to domain summaries.
func MapMovies(dtos []movieDTO) ([]domain.MediaSummary, error) {
	items := make([]domain.MediaSummary, 0, len(dtos))
	for _, d := range dtos {
		item, err := mapMovie(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func mapMovie(d movieDTO) (domain.MediaSummary, error) {
	if d.ID == nil {
		return domain.MediaSummary{}, domain.ErrMalformedPayload
	}
	genreIDs := d.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}
	return domain.MediaSummary{
		ID:           *d.ID,
		Title:        d.Title,
		Overview:     strOrEmpty(d.Overview),
		PosterPath:   strOrEmpty(d.PosterPath),
		BackdropPath: strOrEmpty(d.BackdropPath),
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		ReleaseDate:  strOrEmpty(d.ReleaseDate),
		GenreIDs:     genreIDs,
		Popularity:   d.Popularity,
		Kind:         domain.KindMovie,
	}, nil
}

// MapTVShows converts TV show rows to domain summaries.
func MapTVShows(dtos []tvShowDTO) ([]domain.MediaSummary, error) {
	items := make([]domain.MediaSummary, 0, len(dtos))
	for _, d := range dtos {
		item, err := mapTVShow(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func mapTVShow(d tvShowDTO) (domain.MediaSummary, error) {
	if d.ID == nil {
		return domain.MediaSummary{}, domain.ErrMalformedPayload
	}
	genreIDs := d.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}
	return domain.MediaSummary{
		ID:           *d.ID,
		Title:        d.Name,
		Overview:     strOrEmpty(d.Overview),
		PosterPath:   strOrEmpty(d.PosterPath),
		BackdropPath: strOrEmpty(d.BackdropPath),
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		ReleaseDate:  strOrEmpty(d.FirstAirDate),
		GenreIDs:     genreIDs,
		Popularity:   d.Popularity,
		Kind:         domain.KindTVShow,
	}, nil
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, 0, len(dtos))
	for _, g := range dtos {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

// MapMovieDetail converts a movie detail payload to a domain detail.
func MapMovieDetail(d movieDetailDTO) (domain.MediaDetail, error) {
	if d.ID == nil {
		return domain.MediaDetail{}, domain.ErrMalformedPayload
	}
	return domain.MediaDetail{
		MediaSummary: domain.MediaSummary{
			ID:           *d.ID,
			Title:        d.Title,
			Overview:     strOrEmpty(d.Overview),
			PosterPath:   strOrEmpty(d.PosterPath),
			BackdropPath: strOrEmpty(d.BackdropPath),
			VoteAverage:  d.VoteAverage,
			VoteCount:    d.VoteCount,
			ReleaseDate:  strOrEmpty(d.ReleaseDate),
			GenreIDs:     []int{},
			Popularity:   d.Popularity,
			Kind:         domain.KindMovie,
		},
		Runtime: intOrZero(d.Runtime),
		Genres:  mapGenres(d.Genres),
		Status:  strOrEmpty(d.Status),
		Tagline: strOrEmpty(d.Tagline),
	}, nil
}

// MapTVShowDetail converts a TV show detail payload to a domain detail.
func MapTVShowDetail(d tvShowDetailDTO) (domain.MediaDetail, error) {
	if d.ID == nil {
		return domain.MediaDetail{}, domain.ErrMalformedPayload
	}
	return domain.MediaDetail{
		MediaSummary: domain.MediaSummary{
			ID:           *d.ID,
			Title:        d.Name,
			Overview:     strOrEmpty(d.Overview),
			PosterPath:   strOrEmpty(d.PosterPath),
			BackdropPath: strOrEmpty(d.BackdropPath),
			VoteAverage:  d.VoteAverage,
			VoteCount:    d.VoteCount,
			ReleaseDate:  strOrEmpty(d.FirstAirDate),
			GenreIDs:     []int{},
			Popularity:   d.Popularity,
			Kind:         domain.KindTVShow,
		},
		Seasons:     intOrZero(d.NumberOfSeasons),
		Episodes:    intOrZero(d.NumberOfEpisodes),
		LastAirDate: strOrEmpty(d.LastAirDate),
		Genres:      mapGenres(d.Genres),
		Status:      strOrEmpty(d.Status),
		Tagline:     strOrEmpty(d.Tagline),
	}, nil
}
