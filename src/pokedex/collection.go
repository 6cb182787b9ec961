package pokedex

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/BielosX/wombat/pokedex/src/model"
	"github.com/BielosX/wombat/pokedex/src/pagination"
	"go.uber.org/zap"
)

// Snapshot is a copy of the collection state handed out to readers.
type Snapshot struct {
	Pokemon     []model.Pokemon
	LoadingMore bool
	HasMore     bool
	// Failed and Skipped count entries dropped from Pokemon because the
	// detail fetch failed or the list url carried no id.
	Failed  int
	Skipped int
}

type Option func(*Collection)

func WithConcurrency(concurrency int) Option {
	return func(c *Collection) {
		if concurrency > 0 {
			c.concurrency = concurrency
		}
	}
}

// Collection pages through the upstream listing and accumulates detail
// records, one id-sorted batch per page.
//
// LoadMore is guarded against re-entry. LoadInitial is not guarded against
// LoadMore: both may run at once and whichever commits last wins.
type Collection struct {
	fetcher     Fetcher
	sugar       *zap.SugaredLogger
	concurrency int

	life   context.Context
	cancel context.CancelFunc

	loadingMore atomic.Bool

	mu          sync.Mutex
	pokemon     []model.Pokemon
	cursor      *pagination.Cursor
	failed      int
	skipped     int
	closed      bool
	subscribers map[int]chan Snapshot
	nextId      int
}

func NewCollection(fetcher Fetcher, sugar *zap.SugaredLogger, opts ...Option) *Collection {
	life, cancel := context.WithCancel(context.Background())
	c := &Collection{
		fetcher:     fetcher,
		sugar:       sugar,
		concurrency: DefaultConcurrency,
		life:        life,
		cancel:      cancel,
		pokemon:     []model.Pokemon{},
		subscribers: make(map[int]chan Snapshot),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadInitial replaces the whole list with the first page of size pageSize.
// Failures are logged and leave the previous state in place.
func (c *Collection) LoadInitial(ctx context.Context, pageSize int) {
	ctx, stop := c.bind(ctx)
	defer stop()
	c.sugar.Infof("Loading first page of %d Pokemon", pagination.First(pageSize).Limit)
	p, err := fetchPage(ctx, c.fetcher, pagination.First(pageSize))
	if err != nil {
		c.sugar.Errorf("Failed to load Pokemon list: %s", err)
		return
	}
	b := fetchBatch(ctx, c.fetcher, c.sugar, c.concurrency, p.stubs)
	if ctx.Err() != nil {
		c.sugar.Warnf("Dropping first page, %s", ctx.Err())
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cursor = &p.cursor
	if p.empty {
		c.sugar.Warnf("First page carried no results, keeping %d Pokemon", len(c.pokemon))
		c.publishLocked()
		return
	}
	c.pokemon = b.pokemon
	c.failed = b.failed
	c.skipped = b.skipped
	c.sugar.Infof("Loaded %d Pokemon (%d failed, %d skipped)", len(b.pokemon), b.failed, b.skipped)
	c.publishLocked()
}

// LoadMore appends the next page. It returns immediately when nothing has
// been loaded yet, when upstream has no more entries or when another
// LoadMore is still running.
func (c *Collection) LoadMore(ctx context.Context) {
	if !c.loadingMore.CompareAndSwap(false, true) {
		return
	}
	// The cursor is read only while the flag is held, so it always reflects
	// the page committed by the previous LoadMore.
	c.mu.Lock()
	cursor := c.cursor
	c.mu.Unlock()
	if cursor == nil || !cursor.HasMore() {
		c.loadingMore.Store(false)
		return
	}
	defer c.releaseLoadingMore()
	c.publish()

	ctx, stop := c.bind(ctx)
	defer stop()
	next := cursor.Next()
	c.sugar.Infof("Loading %d more Pokemon from offset %d", next.Limit, next.Offset)
	p, err := fetchPage(ctx, c.fetcher, next)
	if err != nil {
		c.sugar.Errorf("Failed to load more Pokemon: %s", err)
		return
	}
	b := fetchBatch(ctx, c.fetcher, c.sugar, c.concurrency, p.stubs)
	if ctx.Err() != nil {
		c.sugar.Warnf("Dropping page at offset %d, %s", next.Offset, ctx.Err())
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cursor = &p.cursor
	if p.empty {
		c.sugar.Warnf("Page at offset %d carried no results", next.Offset)
		return
	}
	c.pokemon = append(slices.Clip(c.pokemon), b.pokemon...)
	c.failed += b.failed
	c.skipped += b.skipped
	c.sugar.Infof("Appended %d Pokemon, %d in total", len(b.pokemon), len(c.pokemon))
}

func (c *Collection) releaseLoadingMore() {
	c.loadingMore.Store(false)
	c.publish()
}

func (c *Collection) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Collection) Cursor() (pagination.Cursor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor == nil {
		return pagination.Cursor{}, false
	}
	return *c.cursor, true
}

// Subscribe returns a channel that receives the current snapshot and then a
// new one after every change. Only the latest snapshot is buffered, so a
// slow reader skips intermediate states. The returned func unsubscribes.
func (c *Collection) Subscribe() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan Snapshot, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextId
	c.nextId++
	c.subscribers[id] = ch
	ch <- c.snapshotLocked()
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subscribers[id]; ok {
			delete(c.subscribers, id)
			close(sub)
		}
	}
}

// Close cancels fetches in flight and drops their results. Subscriber
// channels are closed.
func (c *Collection) Close() {
	c.cancel()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subscribers {
		delete(c.subscribers, id)
		close(ch)
	}
}

func (c *Collection) bind(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stopAfter := context.AfterFunc(c.life, cancel)
	return ctx, func() {
		stopAfter()
		cancel()
	}
}

func (c *Collection) publish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked()
}

func (c *Collection) publishLocked() {
	if c.closed {
		return
	}
	snapshot := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

func (c *Collection) snapshotLocked() Snapshot {
	return Snapshot{
		Pokemon:     slices.Clone(c.pokemon),
		LoadingMore: c.loadingMore.Load(),
		HasMore:     c.cursor != nil && c.cursor.HasMore(),
		Failed:      c.failed,
		Skipped:     c.skipped,
	}
}
