// Package controller drives one embedded review widget: it owns the view
// state, issues loads and reconciles responses into the container.
//
// The first successful load renders the whole layout. Later loads only
// replace the review list and pagination regions, so the summary, gallery
// and filter bar survive filter, sort and page changes.
package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
	"github.com/betona1/cafe24-staff-review/internal/widget/lightbox"
	"github.com/betona1/cafe24-staff-review/internal/widget/render"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
	"github.com/betona1/cafe24-staff-review/internal/widget/state"
)

// DefaultContainerID is the element id the widget mounts into.
const DefaultContainerID = "staff-review-widget"

// Fetcher retrieves one page of reviews.
type Fetcher interface {
	Fetch(ctx context.Context, q review.Query) (*review.Page, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, q review.Query) (*review.Page, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, q review.Query) (*review.Page, error) {
	return f(ctx, q)
}

// Phase is the lifecycle state of the widget.
type Phase int

const (
	Idle Phase = iota
	Loading
	Rendered
	Errored
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

// Options configures a Controller.
type Options struct {
	// ContainerID defaults to DefaultContainerID.
	ContainerID string
	// ServerBaseURL resolves image paths.
	ServerBaseURL string
	// DefaultProductID is used when the container has no data-product-id.
	DefaultProductID string
	PerPage          int
	Logger           *zap.Logger
	// Lightbox defaults to the one shared by the document.
	Lightbox *lightbox.Lightbox
}

// Controller is the view controller of one widget instance.
type Controller struct {
	doc      dom.Document
	fetcher  Fetcher
	opts     Options
	logger   *zap.Logger
	lightbox *lightbox.Lightbox

	mu        sync.Mutex
	ctx       context.Context
	container dom.Element
	state     *state.State
	phase     Phase
	seq       uint64
	offs      []func()

	inflight sync.WaitGroup
}

// New constructs a controller. Nothing touches the document until Initialize.
func New(doc dom.Document, fetcher Fetcher, opts Options) *Controller {
	if strings.TrimSpace(opts.ContainerID) == "" {
		opts.ContainerID = DefaultContainerID
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lb := opts.Lightbox
	if lb == nil {
		lb = lightbox.ForDocument(doc)
	}
	return &Controller{
		doc:      doc,
		fetcher:  fetcher,
		opts:     opts,
		logger:   logger.With(zap.String("widget_id", ulid.Make().String())),
		lightbox: lb,
		ctx:      context.Background(),
	}
}

// Initialize mounts the widget and performs the first load. It returns false,
// leaving the page untouched, when the container or the product id is missing.
func (c *Controller) Initialize(ctx context.Context) bool {
	container := c.doc.GetElementByID(c.opts.ContainerID)
	if container == nil {
		c.log().Debug("widget container not found", zap.String("container_id", c.opts.ContainerID))
		return false
	}
	productID, _ := container.Attr("data-product-id")
	productID = strings.TrimSpace(productID)
	if productID == "" {
		productID = strings.TrimSpace(c.opts.DefaultProductID)
	}
	if productID == "" {
		c.log().Debug("widget has no product id", zap.String("container_id", c.opts.ContainerID))
		return false
	}

	c.mu.Lock()
	c.ctx = ctx
	if c.container == nil {
		c.container = container
		c.state = state.New(state.Config{
			ServerBaseURL: c.opts.ServerBaseURL,
			ProductID:     productID,
			PerPage:       c.opts.PerPage,
		})
		c.logger = c.logger.With(zap.String("product_id", productID))
		container.AddClass(render.ClassWidget)
		c.bind()
	}
	logger := c.logger
	c.mu.Unlock()

	logger.Debug("widget initialized")
	c.Load(ctx, 1)
	return true
}

// Load fetches page and reconciles the response. Only the most recently
// issued load may touch the document; older completions are dropped.
func (c *Controller) Load(ctx context.Context, page int) {
	seq, q, logger, ok := c.begin(page)
	if !ok {
		return
	}
	c.fetch(ctx, logger, seq, q)
}

func (c *Controller) fetch(ctx context.Context, logger *zap.Logger, seq uint64, q review.Query) {
	logger.Debug("loading reviews", zap.String("sort", string(q.Sort)), zap.Bool("photo_only", q.PhotoOnly))
	result, err := c.fetcher.Fetch(ctx, q)
	c.finish(logger, seq, result, err)
}

// begin records the requested page and shows the loading state.
func (c *Controller) begin(page int) (uint64, review.Query, *zap.Logger, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil || !c.state.SetPage(page) {
		return 0, review.Query{}, nil, false
	}
	c.seq++
	c.phase = Loading

	if !c.state.RenderedOnce() {
		c.container.Replace(render.Loading())
	} else {
		c.replaceRegion(render.ReviewListID, render.Loading())
		c.replaceRegion(render.PaginationAreaID)
	}
	q := c.state.Query()
	return c.seq, q, c.logger.With(zap.Int("page", q.Page), zap.Uint64("seq", c.seq)), true
}

func (c *Controller) finish(logger *zap.Logger, seq uint64, result *review.Page, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		logger.Debug("discarding stale response", zap.Uint64("latest_seq", c.seq))
		return
	}

	if err != nil {
		logger.Warn("failed to load reviews", zap.Error(err))
		c.phase = Errored
		if !c.state.RenderedOnce() {
			c.container.Replace(render.Error())
			return
		}
		c.replaceRegion(render.ReviewListID, render.Error())
		c.replaceRegion(render.PaginationAreaID)
		return
	}

	c.state.Store(result)
	if !c.state.RenderedOnce() {
		c.container.Replace(render.Widget(result, c.state)...)
		c.state.MarkRendered()
	} else {
		c.replaceRegion(render.ReviewListID, render.List(result, c.state)...)
		c.replaceRegion(render.PaginationAreaID, render.Pagination(result, c.state))
		c.syncControls()
	}
	c.phase = Rendered
	logger.Debug("reviews rendered", zap.Int("items", len(result.Items)), zap.Int("total", result.Total))
}

func (c *Controller) replaceRegion(id string, nodes ...*html.Node) {
	if region := c.container.QuerySelector("#" + id); region != nil {
		region.Replace(nodes...)
	}
}

// syncControls re-applies the filter tab and sort selector state.
func (c *Controller) syncControls() {
	for _, tab := range c.container.QuerySelectorAll("." + render.ClassFilterTab) {
		filter, _ := tab.Attr(render.AttrFilter)
		tab.ToggleClass(render.ClassActive, render.TabActive(filter, c.state.PhotoOnly()))
	}
	if sel := c.container.QuerySelector("." + render.ClassSortSelect); sel != nil {
		sel.SetValue(string(c.state.Sort()))
	}
}

// spawn issues a handler-triggered load. The sequence number and loading
// state are taken synchronously, in event order; only the fetch runs in the
// background.
func (c *Controller) spawn(page int) {
	seq, q, logger, ok := c.begin(page)
	if !ok {
		return
	}
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.fetch(ctx, logger, seq, q)
	}()
}

// Phase reports the current lifecycle state.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Snapshot returns the current query parameters. It is zero before Initialize.
func (c *Controller) Snapshot() review.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return review.Query{}
	}
	return c.state.Query()
}

func (c *Controller) log() *zap.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

// Wait blocks until every load started by an event handler has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close detaches the event listeners and waits for pending loads.
func (c *Controller) Close() {
	c.mu.Lock()
	offs := c.offs
	c.offs = nil
	c.mu.Unlock()
	for _, off := range offs {
		off()
	}
	c.Wait()
}
