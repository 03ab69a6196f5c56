package tmdb

// pagedResponse is the envelope of every TMDB list endpoint.
type pagedResponse[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// movieDTO is one movie row from a list or search endpoint. Pointer
// fields may be null/absent on the wire; defaulting happens in the
// mappers, nowhere downstream.
type movieDTO struct {
	ID           *int    `json:"id"`
	Title        string  `json:"title"`
	Overview     *string `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	ReleaseDate  *string `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity"`
}

// tvShowDTO is one TV show row from a list or search endpoint.
type tvShowDTO struct {
	ID           *int    `json:"id"`
	Name         string  `json:"name"`
	Overview     *string `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	FirstAirDate *string `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// movieDetailDTO is the /movie/{id} payload.
type movieDetailDTO struct {
	ID           *int       `json:"id"`
	Title        string     `json:"title"`
	Overview     *string    `json:"overview"`
	PosterPath   *string    `json:"poster_path"`
	BackdropPath *string    `json:"backdrop_path"`
	VoteAverage  float64    `json:"vote_average"`
	VoteCount    int        `json:"vote_count"`
	ReleaseDate  *string    `json:"release_date"`
	Runtime      *int       `json:"runtime"`
	Genres       []genreDTO `json:"genres"`
	Status       *string    `json:"status"`
	Tagline      *string    `json:"tagline"`
	Popularity   float64    `json:"popularity"`
}

// tvShowDetailDTO is the /tv/{id} payload.
type tvShowDetailDTO struct {
	ID               *int       `json:"id"`
	Name             string     `json:"name"`
	Overview         *string    `json:"overview"`
	PosterPath       *string    `json:"poster_path"`
	BackdropPath     *string    `json:"backdrop_path"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	FirstAirDate     *string    `json:"first_air_date"`
	LastAirDate      *string    `json:"last_air_date"`
	NumberOfSeasons  *int       `json:"number_of_seasons"`
	NumberOfEpisodes *int       `json:"number_of_episodes"`
	Genres           []genreDTO `json:"genres"`
	Status           *string    `json:"status"`
	Tagline          *string    `json:"tagline"`
	Popularity       float64    `json:"popularity"`
}
