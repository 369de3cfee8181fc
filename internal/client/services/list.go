package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/postkeeper/internal/client/client"
	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/common"
	"github.com/dmitrijs2005/postkeeper/internal/debounce"
	"github.com/dmitrijs2005/postkeeper/internal/logging"
)

const (
	DefaultDebounce       = 200 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
)

// ListController keeps the post list consistent while the user searches,
// pages through the feed and deletes posts.
//
// All state lives on a single loop goroutine. Actions and remote call
// completions are posted to it as closures, so no two mutations ever run
// concurrently. Readers get immutable snapshots via Snapshot and Changes.
type ListController struct {
	client   client.Client
	log      logging.Logger
	timeout  time.Duration
	interval time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	actions chan func()
	done    chan struct{}
	workers sync.WaitGroup
	once    sync.Once

	debouncer *debounce.Debouncer[string]
	snapshot  atomic.Pointer[models.State]
	changes   chan models.State

	// Owned by the loop goroutine.
	state      models.State
	feed       []models.Post
	feedLoaded bool
	deleted    map[string]struct{}
	deleting   map[string]struct{}
	seq        uint64
	epoch      uint64
}

type Option func(*ListController)

func WithLogger(l logging.Logger) Option {
	return func(lc *ListController) { lc.log = l }
}

// WithDebounce sets the search quiescence interval. Non-positive values are
// ignored.
func WithDebounce(d time.Duration) Option {
	return func(lc *ListController) {
		if d > 0 {
			lc.interval = d
		}
	}
}

// WithRequestTimeout bounds every remote call. Non-positive values are
// ignored.
func WithRequestTimeout(d time.Duration) Option {
	return func(lc *ListController) {
		if d > 0 {
			lc.timeout = d
		}
	}
}

// NewListController starts a controller over c. initial is the first page
// of the feed when the caller already has one; nil means nothing has been
// loaded yet (see Refresh).
func NewListController(c client.Client, initial *models.Page, opts ...Option) *ListController {
	ctx, cancel := context.WithCancel(context.Background())
	lc := &ListController{
		client:   c,
		log:      logging.Nop(),
		timeout:  DefaultRequestTimeout,
		interval: DefaultDebounce,
		ctx:      ctx,
		cancel:   cancel,
		actions:  make(chan func()),
		done:     make(chan struct{}),
		changes:  make(chan models.State, 1),
		deleted:  make(map[string]struct{}),
		deleting: make(map[string]struct{}),
	}
	for _, o := range opts {
		o(lc)
	}
	lc.log = lc.log.With("module", "list")

	if initial != nil {
		lc.feed = models.MergeByID(nil, initial.Posts, nil)
		lc.state.More = initial.More
		lc.state.Loaded = true
		lc.feedLoaded = true
	}
	lc.state.Items = models.ClonePosts(lc.feed)
	s := lc.state
	lc.snapshot.Store(&s)

	lc.debouncer = debounce.New(lc.interval, lc.onQuery)

	go lc.run()
	return lc
}

func (lc *ListController) run() {
	defer close(lc.done)
	for {
		select {
		case <-lc.ctx.Done():
			return
		case fn := <-lc.actions:
			fn()
		}
	}
}

// submit hands fn to the loop. It reports false once the controller is
// closed, in which case fn never runs.
func (lc *ListController) submit(fn func()) bool {
	select {
	case lc.actions <- fn:
		return true
	case <-lc.ctx.Done():
		return false
	}
}

// call runs fn on the loop and returns its result, or false if the
// controller is closed.
func (lc *ListController) call(fn func() bool) bool {
	res := make(chan bool, 1)
	if !lc.submit(func() { res <- fn() }) {
		return false
	}
	select {
	case r := <-res:
		return r
	case <-lc.done:
		return false
	}
}

// goRemote runs a remote call off the loop with its own deadline.
func (lc *ListController) goRemote(fn func(ctx context.Context)) {
	lc.workers.Add(1)
	go func() {
		defer lc.workers.Done()
		ctx, cancel := context.WithTimeout(lc.ctx, lc.timeout)
		defer cancel()
		fn(ctx)
	}()
}

// SetQuery records raw search input. The query takes effect once it has
// been stable for the debounce interval. Repeating the active query after
// its search failed issues the search again right away.
func (lc *ListController) SetQuery(text string) {
	lc.debouncer.Set(text)
	if text == "" || lc.debouncer.Value() != text {
		return
	}
	lc.call(func() bool {
		if lc.state.Query != text || lc.state.Err == nil || lc.state.Searching {
			return false
		}
		lc.log.Debug(lc.ctx, "retrying failed search", "query", text)
		lc.applyQuery(text)
		return true
	})
}

// LoadMore requests the next feed page. It reports whether a fetch was
// started: nothing happens while searching, while a page is in flight or
// when the feed has no more pages.
func (lc *ListController) LoadMore() bool {
	return lc.call(func() bool {
		if !lc.state.CanLoadMore() {
			return false
		}
		lc.fetchPage(len(lc.feed)/common.PageSize + 1)
		return true
	})
}

// Refresh fetches the first feed page if the feed has never been loaded.
func (lc *ListController) Refresh() bool {
	return lc.call(func() bool {
		if lc.feedLoaded || lc.state.Paging || lc.state.Query != "" {
			return false
		}
		lc.fetchPage(1)
		return true
	})
}

// Delete removes the post with the given id remotely and, once the server
// confirms, locally. It reports false when the post is not displayed or a
// delete for it is already in flight.
func (lc *ListController) Delete(id string) bool {
	if id == "" {
		return false
	}
	return lc.call(func() bool {
		if models.IndexOf(lc.state.Items, id) < 0 {
			return false
		}
		if _, busy := lc.deleting[id]; busy {
			return false
		}
		lc.deleting[id] = struct{}{}
		epoch := lc.epoch
		lc.goRemote(func(ctx context.Context) {
			err := lc.client.DeletePost(ctx, id)
			lc.submit(func() { lc.deleteDone(epoch, id, err) })
		})
		return true
	})
}

// Reset forgets everything loaded so far: the feed, search results, the
// query and locally deleted ids. Requests still in flight are ignored when
// they complete. Use it when the credential changes.
func (lc *ListController) Reset() bool {
	lc.debouncer.Reset("")
	return lc.call(func() bool {
		lc.epoch++
		lc.seq++
		lc.feed = nil
		lc.feedLoaded = false
		lc.deleted = make(map[string]struct{})
		lc.deleting = make(map[string]struct{})
		lc.state = models.State{}
		lc.log.Debug(lc.ctx, "list reset")
		lc.publish()
		return true
	})
}

// Snapshot returns the current state. The returned value is never mutated
// by the controller.
func (lc *ListController) Snapshot() models.State {
	s := *lc.snapshot.Load()
	s.Items = models.ClonePosts(s.Items)
	return s
}

// Changes delivers the latest state after each change. Intermediate states
// may be skipped if the reader is slow. The channel is closed by Close.
func (lc *ListController) Changes() <-chan models.State {
	return lc.changes
}

// Close stops the debouncer, cancels in-flight requests and waits for the
// loop to exit. Results arriving afterwards are dropped. Close is
// idempotent.
func (lc *ListController) Close() {
	lc.once.Do(func() {
		lc.debouncer.Stop()
		lc.cancel()
		<-lc.done
		lc.workers.Wait()
		close(lc.changes)
	})
}

// onQuery runs on the debouncer goroutine.
func (lc *ListController) onQuery(q string) {
	lc.submit(func() { lc.applyQuery(q) })
}

func (lc *ListController) applyQuery(q string) {
	lc.seq++
	lc.state.Query = q

	if q == "" {
		lc.state.Searching = false
		lc.state.Err = nil
		lc.state.Loaded = lc.feedLoaded
		lc.state.Items = models.ClonePosts(lc.feed)
		lc.log.Debug(lc.ctx, "search cleared", "items", len(lc.feed))
		lc.publish()
		return
	}

	seq := lc.seq
	lc.state.Searching = true
	lc.publish()

	lc.goRemote(func(ctx context.Context) {
		posts, err := lc.client.Search(ctx, q)
		lc.submit(func() { lc.searchDone(seq, q, posts, err) })
	})
}

func (lc *ListController) searchDone(seq uint64, q string, posts []models.Post, err error) {
	if seq != lc.seq {
		lc.log.Debug(lc.ctx, "stale search result dropped", "query", q)
		return
	}
	lc.state.Searching = false
	if err != nil {
		lc.log.Warn(lc.ctx, "search failed", "query", q, "error", err)
		lc.state.Err = err
		lc.publish()
		return
	}
	lc.state.Items = models.Without(posts, lc.deleted)
	lc.state.Loaded = true
	lc.state.Err = nil
	lc.publish()
}

func (lc *ListController) fetchPage(page int) {
	lc.state.Paging = true
	lc.publish()

	epoch := lc.epoch
	lc.goRemote(func(ctx context.Context) {
		res, err := lc.client.ListMine(ctx, page)
		lc.submit(func() { lc.pageDone(epoch, page, res, err) })
	})
}

func (lc *ListController) pageDone(epoch uint64, page int, res *models.Page, err error) {
	if epoch != lc.epoch {
		lc.log.Debug(lc.ctx, "page from before reset dropped", "page", page)
		return
	}
	lc.state.Paging = false
	if err != nil {
		lc.log.Warn(lc.ctx, "page fetch failed", "page", page, "error", err)
		lc.state.Err = err
		lc.publish()
		return
	}
	if res == nil {
		res = &models.Page{}
	}

	lc.feed = models.MergeByID(lc.feed, res.Posts, lc.deleted)
	lc.feedLoaded = true
	lc.state.More = res.More
	if lc.state.Query == "" {
		lc.state.Loaded = true
		lc.state.Err = nil
		lc.state.Items = models.ClonePosts(lc.feed)
	}
	lc.log.Debug(lc.ctx, "page merged", "page", page, "feed", len(lc.feed), "more", res.More)
	lc.publish()
}

func (lc *ListController) deleteDone(epoch uint64, id string, err error) {
	if epoch != lc.epoch {
		lc.log.Debug(lc.ctx, "delete from before reset dropped", "id", id, "error", err)
		return
	}
	delete(lc.deleting, id)
	if err != nil {
		lc.log.Warn(lc.ctx, "delete failed", "id", id, "error", err)
		lc.state.Err = err
		lc.publish()
		return
	}

	lc.deleted[id] = struct{}{}
	lc.state.Items, _ = models.RemoveByID(lc.state.Items, id)
	lc.feed, _ = models.RemoveByID(lc.feed, id)
	lc.state.Err = nil
	lc.log.Info(lc.ctx, "post deleted", "id", id)
	lc.publish()
}

// publish stores a snapshot and replaces any unread notification with it.
func (lc *ListController) publish() {
	s := lc.state
	s.Items = models.ClonePosts(lc.state.Items)
	lc.snapshot.Store(&s)

	select {
	case <-lc.changes:
	default:
	}
	select {
	case lc.changes <- s:
	default:
	}
}
