// Package refresh runs live fetches into the article store, one at a time.
package refresh

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/feed"
	"github.com/matheuskafuri/grid7/internal/store"
)

var (
	// ErrInFlight is returned when a refresh is requested while another is
	// still running. The request is dropped, not queued.
	ErrInFlight = errors.New("refresh already in flight")

	// ErrAutoRefreshed is returned by AutoRefresh after the session's
	// automatic refresh has already been issued.
	ErrAutoRefreshed = errors.New("automatic refresh already issued")
)

// Fetcher produces freshly fetched articles.
type Fetcher interface {
	FetchLive(ctx context.Context) feed.FetchResult
}

// Status summarises what a refresh did to the store.
type Status int

const (
	// StatusMerged: articles were fetched and merged; every sub-query succeeded.
	StatusMerged Status = iota
	// StatusPartial: some sub-queries failed, the rest were merged.
	StatusPartial
	// StatusEmpty: every sub-query succeeded but returned nothing.
	StatusEmpty
	// StatusFailed: nothing was merged and at least one sub-query failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusMerged:
		return "merged"
	case StatusPartial:
		return "partial"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes a settled refresh.
type Outcome struct {
	Status   Status
	Fetched  int
	Added    int
	Errors   []error
	Started  time.Time
	Duration time.Duration
}

// Err joins the sub-query errors, or returns nil.
func (o Outcome) Err() error {
	return errors.Join(o.Errors...)
}

// Coordinator guards the content supplier so at most one fetch is in
// flight, and merges successful results into the store.
type Coordinator struct {
	store   *store.Store
	fetcher Fetcher
	logger  *log.Logger

	busy atomic.Bool
	auto atomic.Bool

	mu   sync.Mutex
	last *Outcome
}

// New creates an idle Coordinator.
func New(s *store.Store, f Fetcher, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{store: s, fetcher: f, logger: logger.WithPrefix("refresh")}
}

// Refreshing reports whether a fetch is in flight.
func (c *Coordinator) Refreshing() bool {
	return c.busy.Load()
}

// Last returns the most recent outcome, if any refresh has settled.
func (c *Coordinator) Last() (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return Outcome{}, false
	}
	return *c.last, true
}

// Refresh fetches live articles and merges them into the store. It blocks
// until the fetch settles. While another refresh is running it returns
// ErrInFlight without contacting the supplier.
func (c *Coordinator) Refresh(ctx context.Context) (Outcome, error) {
	if !c.acquire() {
		return Outcome{}, ErrInFlight
	}
	return c.run(ctx), nil
}

// Start begins a refresh in the background. The guard is taken before
// Start returns, so ErrInFlight is reported synchronously. The channel
// receives the outcome once the fetch settles.
func (c *Coordinator) Start(ctx context.Context) (<-chan Outcome, error) {
	if !c.acquire() {
		return nil, ErrInFlight
	}
	done := make(chan Outcome, 1)
	go func() {
		done <- c.run(ctx)
	}()
	return done, nil
}

func (c *Coordinator) acquire() bool {
	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Debug("refresh dropped", "reason", "in flight")
		return false
	}
	return true
}

// run performs a fetch while holding the guard and releases it on return.
func (c *Coordinator) run(ctx context.Context) Outcome {
	defer c.busy.Store(false)

	out := Outcome{Started: time.Now()}
	result := c.fetcher.FetchLive(ctx)
	out.Fetched = len(result.Articles)
	out.Errors = result.Errors

	switch {
	case len(result.Articles) > 0:
		out.Added = c.store.Merge(result.Articles)
		out.Status = StatusMerged
		if len(result.Errors) > 0 {
			out.Status = StatusPartial
		}
	case len(result.Errors) > 0:
		out.Status = StatusFailed
	default:
		out.Status = StatusEmpty
	}
	out.Duration = time.Since(out.Started)

	for _, err := range result.Errors {
		c.logger.Warn("sub-query failed", "err", err)
	}
	c.logger.Info("refresh settled",
		"status", out.Status,
		"fetched", out.Fetched,
		"added", out.Added,
		"took", out.Duration.Round(time.Millisecond),
	)

	c.mu.Lock()
	c.last = &out
	c.mu.Unlock()
	return out
}

// AutoRefresh issues the session's single automatic refresh. Every later
// call returns ErrAutoRefreshed, whether or not the first one merged
// anything.
func (c *Coordinator) AutoRefresh(ctx context.Context) (Outcome, error) {
	if !c.auto.CompareAndSwap(false, true) {
		return Outcome{}, ErrAutoRefreshed
	}
	return c.Refresh(ctx)
}
