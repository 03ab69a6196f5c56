package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kweston/marquee/internal/domain"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 30 * time.Second
	userAgent      = "Marquee/1.0"
)

// Client is a stateless adapter over the TMDB v3 API. It translates
// catalog queries into HTTP calls and normalizes the wire payload into
// domain records. It performs no retries and no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client. An empty baseURL selects the
// public API endpoint.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET and returns the response body.
// Any transport or HTTP failure is returned as a *domain.RemoteError
// with the original message preserved.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return nil, &domain.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{Message: err.Error()}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrItemNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode)
		return nil, &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: statusMessage(resp.StatusCode, body),
		}
	}

	return body, nil
}

// statusMessage extracts TMDB's status_message from an error body,
// falling back to the HTTP status text.
func statusMessage(status int, body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		return payload.StatusMessage
	}
	return http.StatusText(status)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}

// listMovies fetches one page of a movie collection endpoint.
func (c *Client) listMovies(ctx context.Context, path string, query url.Values) ([]domain.MediaSummary, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var resp pagedResponse[movieDTO]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return MapMovies(resp.Results)
}

// listTVShows fetches one page of a TV show collection endpoint.
func (c *Client) listTVShows(ctx context.Context, path string, query url.Values) ([]domain.MediaSummary, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var resp pagedResponse[tvShowDTO]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return MapTVShows(resp.Results)
}

// PopularMovies returns one page of popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listMovies(ctx, "/movie/popular", pageQuery(page))
}

// TopRatedMovies returns one page of top rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listMovies(ctx, "/movie/top_rated", pageQuery(page))
}

// NowPlayingMovies returns one page of movies currently in theaters.
func (c *Client) NowPlayingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listMovies(ctx, "/movie/now_playing", pageQuery(page))
}

// TrendingMovies returns one page of this week's trending movies.
func (c *Client) TrendingMovies(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listMovies(ctx, "/trending/movie/week", pageQuery(page))
}

// SearchMovies returns one page of movies matching the query text.
func (c *Client) SearchMovies(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	query := pageQuery(page)
	query.Set("query", text)
	return c.listMovies(ctx, "/search/movie", query)
}

// PopularTVShows returns one page of popular TV shows.
func (c *Client) PopularTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listTVShows(ctx, "/tv/popular", pageQuery(page))
}

// TopRatedTVShows returns one page of top rated TV shows.
func (c *Client) TopRatedTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listTVShows(ctx, "/tv/top_rated", pageQuery(page))
}

// TrendingTVShows returns one page of this week's trending TV shows.
func (c *Client) TrendingTVShows(ctx context.Context, page int) ([]domain.MediaSummary, error) {
	return c.listTVShows(ctx, "/trending/tv/week", pageQuery(page))
}

// SearchTVShows returns one page of TV shows matching the query text.
func (c *Client) SearchTVShows(ctx context.Context, text string, page int) ([]domain.MediaSummary, error) {
	query := pageQuery(page)
	query.Set("query", text)
	return c.listTVShows(ctx, "/search/tv", query)
}

// MovieDetail returns the full record for a movie.
func (c *Client) MovieDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var dto movieDetailDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	detail, err := MapMovieDetail(dto)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// TVShowDetail returns the full record for a TV show.
func (c *Client) TVShowDetail(ctx context.Context, id int) (*domain.MediaDetail, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/tv/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var dto tvShowDetailDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	detail, err := MapTVShowDetail(dto)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
