// Package getter coalesces many single-identifier lookups into a small
// number of bulk POST calls against a rate-limited batch service.
//
// Callers obtain a Client from a Getter and call Get concurrently from
// any number of goroutines. Each call enqueues into a shared mailbox
// and awaits its own response channel; a background worker periodically
// drains the mailbox, splits the drained window into sub-batches within
// the endpoint's per-call limit, issues one POST per sub-batch and
// routes each parsed item back to the caller that asked for it.
package getter

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ensbatch/internal/config"
)

// Config for creating a new Getter
type Config struct {
	BaseURL        string
	Interval       time.Duration // wake interval of the batching loop
	MailboxSize    int
	RequestTimeout time.Duration
	MaxRetries     int // facade-level resubmissions of retryable failures; 0 means the default
	Logger         zerolog.Logger
}

// Getter owns the background worker that batches requests for one
// endpoint. Create one per endpoint and share its clients freely.
type Getter[T any] struct {
	endpoint   Endpoint[T]
	baseURL    string
	interval   time.Duration
	maxRetries int

	httpClient *http.Client
	mailbox    chan pending[T]
	done       chan struct{}
	closeOnce  sync.Once

	sleep  func(time.Duration) // throttle pauses, replaced in tests
	logger zerolog.Logger
}

// New validates the endpoint contract and starts the background worker.
// A template without exactly one PayloadMarker or a non-positive batch
// size is a configuration defect and fails here rather than at call
// time.
func New[T any](endpoint Endpoint[T], cfg Config) (*Getter[T], error) {
	if n := strings.Count(endpoint.PayloadTemplate(), PayloadMarker); n != 1 {
		return nil, fmt.Errorf("payload template must contain %q exactly once, found %d", PayloadMarker, n)
	}
	if endpoint.MaxBatchSize() < 1 {
		return nil, fmt.Errorf("max batch size must be positive, got %d", endpoint.MaxBatchSize())
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.Interval <= 0 {
		cfg.Interval = config.DefaultPollInterval * time.Millisecond
	}
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = config.DefaultMailboxSize
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = config.DefaultRetryMaxAttempts
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	g := &Getter[T]{
		endpoint:   endpoint,
		baseURL:    cfg.BaseURL,
		interval:   cfg.Interval,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		mailbox: make(chan pending[T], cfg.MailboxSize),
		done:    make(chan struct{}),
		sleep:   time.Sleep,
		logger: cfg.Logger.With().
			Str("component", "getter").
			Str("endpoint", endpoint.URLSuffix()).
			Logger(),
	}

	go g.run()

	return g, nil
}

// NewFromConfig creates a Getter from the application configuration.
func NewFromConfig[T any](endpoint Endpoint[T], cfg *config.Config, logger zerolog.Logger) (*Getter[T], error) {
	return New(endpoint, Config{
		BaseURL:        cfg.BaseURL,
		Interval:       cfg.GetPollIntervalDuration(),
		MailboxSize:    cfg.MailboxSize,
		RequestTimeout: cfg.GetRequestTimeoutDuration(),
		MaxRetries:     cfg.RetryMaxAttempts,
		Logger:         logger,
	})
}

// Client returns a cheap copyable handle bound to this getter's worker.
func (g *Getter[T]) Client() Client[T] {
	return Client[T]{g: g}
}

// Close stops accepting requests, waits for the final window to be
// dispatched, and stops the worker. Clients must not be used after
// Close.
func (g *Getter[T]) Close() {
	g.closeOnce.Do(func() {
		close(g.mailbox)
	})
	<-g.done
}

// run drives the batching loop until the mailbox is closed and drained.
func (g *Getter[T]) run() {
	defer close(g.done)
	for g.cycle() {
	}
	g.logger.Debug().Msg("getter stopped")
}

// cycle performs one armed -> draining -> dispatch transition: wait out
// the interval, block for the first pending request, collect everything
// immediately available without blocking, then dispatch. It returns
// false once the mailbox has been closed and fully drained. An empty
// window is never dispatched.
func (g *Getter[T]) cycle() bool {
	time.Sleep(g.interval)

	first, ok := <-g.mailbox
	if !ok {
		return false
	}

	window := newRegistry[T]()
	window.add(first)

	open := true
drain:
	for {
		select {
		case p, more := <-g.mailbox:
			if !more {
				open = false
				break drain
			}
			window.add(p)
		default:
			break drain
		}
	}

	g.logger.Debug().
		Int("identifiers", window.len()).
		Msg("dispatching window")

	g.dispatch(window)

	return open
}
