// Package feed keeps the upcoming launch manifest loaded: status tracking,
// a single-slot time-boxed cache and cancellation of stale fetches.
package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/launchdeck/internal/models"
)

// Status is the load state of the feed
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FallbackError is shown when a failure carries no message
const FallbackError = "Failed to load missions"

// ErrSuperseded is returned by a Refresh whose fetch was cancelled by a newer
// Refresh or by Close. Such a fetch never touches feed state.
var ErrSuperseded = errors.New("refresh superseded")

// Fetcher loads the mapped upcoming launches
type Fetcher interface {
	FetchUpcoming(ctx context.Context) ([]models.Launch, error)
}

// RefreshOptions controls a single Refresh call
type RefreshOptions struct {
	// Silent prefers a fresh cache over the network and skips the loading state
	Silent bool
}

// Snapshot is a point-in-time copy of the feed state
type Snapshot struct {
	Status   Status
	Launches []models.Launch
	Err      string
}

// NextLaunch returns the first launch in the manifest
func (s Snapshot) NextLaunch() (models.Launch, bool) {
	if len(s.Launches) == 0 {
		return models.Launch{}, false
	}
	return s.Launches[0], true
}

// Option configures a Feed
type Option func(*Feed)

// WithStaleTime overrides the cache freshness window
func WithStaleTime(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.staleTime = d
		}
	}
}

// WithClock injects the time source
func WithClock(now func() time.Time) Option {
	return func(f *Feed) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger attaches a logger
func WithLogger(logger *log.Logger) Option {
	return func(f *Feed) {
		f.logger = logger
	}
}

// Feed tracks the launch manifest for a view
type Feed struct {
	fetcher   Fetcher
	staleTime time.Duration
	now       func() time.Time
	logger    *log.Logger

	mu          sync.Mutex
	state       Snapshot
	cache       *CacheEntry
	generation  uint64
	cancel      context.CancelFunc
	closed      bool
	subscribers map[int]func(Snapshot)
	nextSubID   int

	mountOnce sync.Once
	mountErr  error
}

// New creates an idle feed
func New(fetcher Fetcher, opts ...Option) *Feed {
	f := &Feed{
		fetcher:     fetcher,
		staleTime:   DefaultStaleTime,
		now:         time.Now,
		state:       Snapshot{Status: StatusIdle},
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mount runs the initial silent refresh. Only the first call does any work;
// later calls return the first call's result.
func (f *Feed) Mount(ctx context.Context) error {
	f.mountOnce.Do(func() {
		f.mountErr = f.Refresh(ctx, RefreshOptions{Silent: true})
	})
	return f.mountErr
}

// Refresh reloads the manifest. It blocks until the fetch resolves, fails or
// is superseded.
func (f *Feed) Refresh(ctx context.Context, opts RefreshOptions) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrSuperseded
	}

	if !opts.Silent {
		f.state.Status = StatusLoading
		f.notifyLocked()
	}

	if opts.Silent && f.cache.IsFresh(f.now(), f.staleTime) {
		f.state.Launches = f.cache.Launches
		f.state.Status = StatusSuccess
		f.state.Err = ""
		if f.logger != nil {
			f.logger.Debug("Serving cached launches", "age", f.cache.Age(f.now()), "count", len(f.cache.Launches))
		}
		f.notifyLocked()
		f.mu.Unlock()
		return nil
	}

	// A newer fetch always wins: cancel whatever is still in flight
	if f.cancel != nil {
		f.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f.generation++
	gen := f.generation
	f.cancel = cancel
	f.mu.Unlock()

	launches, err := f.fetcher.FetchUpcoming(fetchCtx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || f.closed {
		cancel()
		if f.logger != nil {
			f.logger.Debug("Discarding superseded fetch", "generation", gen)
		}
		return ErrSuperseded
	}
	f.cancel = nil
	cancel()

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = FallbackError
		}
		f.state.Status = StatusError
		f.state.Err = msg
		if f.logger != nil {
			f.logger.Error("Refresh failed", "error", err)
		}
		f.notifyLocked()
		return err
	}

	f.cache = &CacheEntry{Launches: launches, WrittenAt: f.now()}
	f.state.Launches = launches
	f.state.Status = StatusSuccess
	f.state.Err = ""
	if f.logger != nil {
		f.logger.Info("Refreshed launches", "count", len(launches), "silent", opts.Silent)
	}
	f.notifyLocked()
	return nil
}

// Snapshot returns the current state
func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Cache returns a copy of the cache entry, or nil when nothing was fetched yet
func (f *Feed) Cache() *CacheEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cache == nil {
		return nil
	}
	c := *f.cache
	return &c
}

// Subscribe registers fn to receive every state change. fn runs while the
// feed lock is held and must not call back into the feed.
func (f *Feed) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextSubID
	f.nextSubID++
	f.subscribers[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subscribers, id)
	}
}

// Close cancels any in-flight fetch and rejects further refreshes
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Feed) snapshotLocked() Snapshot {
	s := f.state
	s.Launches = append([]models.Launch(nil), f.state.Launches...)
	return s
}

func (f *Feed) notifyLocked() {
	if len(f.subscribers) == 0 {
		return
	}
	s := f.snapshotLocked()
	for _, fn := range f.subscribers {
		fn(s)
	}
}
