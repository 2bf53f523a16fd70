// Package query caches the three resource lists fetched from the backend.
//
// Each kind has one entry holding the latest settled result. Concurrent
// fetches of a kind share a single in-flight Select; an invalidation that
// arrives while a Select is running schedules exactly one follow-up Select
// so the entry always ends up reflecting server state after the invalidation.
package query

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/logging"
	"golang.org/x/sync/singleflight"
)

var ErrClosed = errors.New("cache closed")

// Source is the part of the remote client the cache reads from.
type Source interface {
	Select(ctx context.Context, table string, columns []string) ([]models.Row, error)
}

type entry struct {
	state *State
	gen   uint64
	dirty bool
}

type Cache struct {
	src    Source
	logger logging.Logger
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	entries map[models.Kind]*entry
	group   singleflight.Group
	subs    map[chan models.Kind]struct{}
}

func NewCache(src Source, logger logging.Logger) *Cache {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		src:     src,
		logger:  logger.With("module", "query_cache"),
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[models.Kind]*entry, len(models.Kinds)),
		subs:    make(map[chan models.Kind]struct{}),
	}
	for _, k := range models.Kinds {
		c.entries[k] = &entry{state: &State{Kind: k}}
	}
	return c
}

// Snapshot returns the current state of kind without blocking.
func (c *Cache) Snapshot(kind models.Kind) *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[kind]; ok {
		return e.state
	}
	return &State{Kind: kind}
}

// Snapshots returns the states of every kind in priority order.
func (c *Cache) Snapshots() []*State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*State, 0, len(models.Kinds))
	for _, k := range models.Kinds {
		out = append(out, c.entries[k].state)
	}
	return out
}

// Fetch returns the records of kind. A settled entry answers immediately,
// including a sticky failure; otherwise the caller joins the in-flight
// Select, starting one if needed. ctx bounds only the wait.
func (c *Cache) Fetch(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return nil, ErrClosed
		}
		e, ok := c.entries[kind]
		if !ok {
			c.mu.Unlock()
			return nil, &models.FetchError{Kind: kind, Err: errors.New("unknown kind")}
		}
		if e.state.Settled() {
			st := e.state
			c.mu.Unlock()
			if st.Status == StatusFailed {
				return nil, st.Err
			}
			return st.Records, nil
		}
		ch := c.joinLocked(kind, e)
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Prefetch starts loading kind unless it is settled or already loading.
func (c *Cache) Prefetch(kind models.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[kind]
	if c.closed || !ok || e.state.Settled() {
		return
	}
	c.joinLocked(kind, e)
}

// Invalidate marks kind stale and refetches it in the background. The
// previous records stay visible until the refetch settles.
func (c *Cache) Invalidate(kind models.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[kind]
	if c.closed || !ok {
		return
	}
	if e.state.Fetching {
		e.dirty = true
		return
	}
	c.startLocked(kind, e)
}

// Refresh invalidates kind and waits for the refetch. It is the only way
// out of a sticky failure besides a successful mutation of the kind.
func (c *Cache) Refresh(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	c.Invalidate(kind)
	return c.Fetch(ctx, kind)
}

// Subscribe returns a channel receiving each kind whose state changed, and
// a function that cancels the subscription. Slow readers miss updates
// rather than block the cache; Snapshot always has the latest state.
func (c *Cache) Subscribe() (<-chan models.Kind, func()) {
	ch := make(chan models.Kind, 16)

	c.mu.Lock()
	if c.closed {
		close(ch)
		c.mu.Unlock()
		return ch, func() {}
	}
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if _, ok := c.subs[ch]; ok {
				delete(c.subs, ch)
				close(ch)
			}
		})
	}
}

// Close cancels in-flight fetches and drops their late results.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	for ch := range c.subs {
		close(ch)
	}
	clear(c.subs)
}

// joinLocked returns the channel of the kind's in-flight Select, starting
// one when nothing is in flight.
func (c *Cache) joinLocked(kind models.Kind, e *entry) <-chan singleflight.Result {
	if !e.state.Fetching {
		return c.startLocked(kind, e)
	}
	return c.group.DoChan(flightKey(kind, e.gen), func() (any, error) {
		// The flight for e.gen stays registered while Fetching is set,
		// so this call joins it.
		return c.run(kind, e.gen)
	})
}

func (c *Cache) startLocked(kind models.Kind, e *entry) <-chan singleflight.Result {
	e.gen++
	gen := e.gen
	if !e.state.Fetching {
		e.state = e.state.with(func(s *State) { s.Fetching = true })
		c.notifyLocked(kind)
	}
	c.logger.Debug(c.ctx, "fetch started", "kind", kind.String(), "gen", gen)
	return c.group.DoChan(flightKey(kind, gen), func() (any, error) {
		return c.run(kind, gen)
	})
}

func (c *Cache) run(kind models.Kind, gen uint64) (any, error) {
	rows, err := c.src.Select(c.ctx, kind.Table(), kind.Columns())
	var records []models.Record
	if err == nil {
		records, err = kind.DecodeAll(rows)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[kind]
	if c.closed || e.gen != gen {
		return nil, nil
	}
	if e.dirty {
		e.dirty = false
		c.startLocked(kind, e)
		return nil, nil
	}

	now := c.now()
	if err != nil {
		fe := &models.FetchError{Kind: kind, Err: err}
		c.logger.Warn(c.ctx, "fetch failed", "kind", kind.String(), "error", err)
		e.state = e.state.with(func(s *State) {
			s.Status = StatusFailed
			s.Fetching = false
			s.Err = fe
			s.UpdatedAt = now
		})
	} else {
		c.logger.Debug(c.ctx, "fetch finished", "kind", kind.String(), "records", len(records))
		e.state = e.state.with(func(s *State) {
			s.Status = StatusReady
			s.Fetching = false
			s.Records = records
			s.Err = nil
			s.UpdatedAt = now
		})
	}
	c.notifyLocked(kind)
	return nil, nil
}

func (c *Cache) notifyLocked(kind models.Kind) {
	for ch := range c.subs {
		select {
		case ch <- kind:
		default:
		}
	}
}

func flightKey(kind models.Kind, gen uint64) string {
	return kind.String() + "#" + strconv.FormatUint(gen, 10)
}
