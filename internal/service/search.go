package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kweston/marquee/internal/domain"
	"github.com/sourcegraph/conc"
)

// debounceWindow is how long after the last keystroke a search fires.
const debounceWindow = 500 * time.Millisecond

// Searcher is the slice of the repository the controller needs.
type Searcher interface {
	SearchMovies(ctx context.Context, text string, page int) ([]domain.MediaSummary, error)
	SearchTVShows(ctx context.Context, text string, page int) ([]domain.MediaSummary, error)
}

// SearchState is the observable snapshot of a search session. Every
// emitted state corresponds to the most recently typed text.
type SearchState struct {
	Query       string
	Loading     bool
	Movies      []domain.MediaSummary
	TVShows     []domain.MediaSummary
	HasSearched bool
	Err         error
}

// SearchController owns the lifecycle of interactive search: it
// coalesces rapid input behind a debounce window, cancels superseded
// in-flight requests, and guarantees that a result belonging to an
// older query never overwrites state produced for a newer one. The
// guarantee rests on a generation token: every input change bumps the
// generation, and a completion whose generation is stale is discarded.
type SearchController struct {
	repo   Searcher
	logger *slog.Logger
	window time.Duration

	mu      sync.Mutex
	state   SearchState
	gen     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	updates chan SearchState
	closed  bool
}

// NewSearchController creates a controller over the given search surface.
func NewSearchController(repo Searcher, logger *slog.Logger) *SearchController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchController{
		repo:    repo,
		logger:  logger,
		window:  debounceWindow,
		updates: make(chan SearchState, 1),
	}
}

// SetQuery feeds a keystroke into the controller. Blank input resets
// the session: prior results, the has-searched flag, any pending timer
// and any in-flight request are all dropped. Non-blank input restarts
// the debounce window; only the latest text matters.
func (c *SearchController) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.stopTimerLocked()
	c.cancelInFlightLocked()
	c.gen++

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		c.state = SearchState{Query: text}
		c.emitLocked()
		return
	}

	c.state.Query = text
	c.state.Err = nil

	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() {
		c.search(gen, trimmed)
	})
	c.emitLocked()
}

// Retry re-runs the search for the current query immediately, skipping
// the debounce window. Blank queries are ignored.
func (c *SearchController) Retry() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	trimmed := strings.TrimSpace(c.state.Query)
	if trimmed == "" {
		c.mu.Unlock()
		return
	}

	c.stopTimerLocked()
	c.cancelInFlightLocked()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go c.search(gen, trimmed)
}

// search issues the concurrent movie/TV pair for one generation.
func (c *SearchController) search(gen uint64, text string) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state.Loading = true
	c.state.Err = nil
	c.emitLocked()
	c.mu.Unlock()

	c.logger.Debug("searching", "query", text)

	var (
		movies, shows     []domain.MediaSummary
		movieErr, showErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		movies, movieErr = c.repo.SearchMovies(ctx, text, 1)
	})
	wg.Go(func() {
		shows, showErr = c.repo.SearchTVShows(ctx, text, 1)
	})
	wg.Wait()
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer query superseded this one while it was in flight; its
	// results must never be applied.
	if c.closed || gen != c.gen {
		c.logger.Debug("discarding stale search results", "query", text)
		return
	}
	c.cancel = nil

	var err error
	if movieErr != nil && showErr != nil {
		err = movieErr
	}

	c.state = SearchState{
		Query:       c.state.Query,
		Movies:      orEmpty(movies),
		TVShows:     orEmpty(shows),
		HasSearched: true,
		Err:         err,
	}
	c.logger.Debug("search complete", "query", text,
		"movies", len(c.state.Movies), "tvShows", len(c.state.TVShows))
	c.emitLocked()
}

// State returns the current snapshot.
func (c *SearchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Updates returns the snapshot channel. Deliveries coalesce: a slow
// consumer sees only the latest state.
func (c *SearchController) Updates() <-chan SearchState {
	return c.updates
}

// Close stops the timer, cancels in-flight work and closes the
// updates channel.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.cancelInFlightLocked()
	close(c.updates)
}

func (c *SearchController) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *SearchController) cancelInFlightLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *SearchController) emitLocked() {
	for {
		select {
		case c.updates <- c.state:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

func orEmpty(items []domain.MediaSummary) []domain.MediaSummary {
	if items == nil {
		return []domain.MediaSummary{}
	}
	return items
}
