package app

import (
	"context"

	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/pagination"
	"github.com/byxorna/storefront/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Fetcher produces the filtered, sorted catalog. catalog.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, filters v1.FilterSet, key v1.SortKey) ([]v1.Product, error)
}

// Trigger names the interaction that started a fetch.
type Trigger int

const (
	TriggerInit Trigger = iota
	TriggerFilter
	TriggerSort
)

func (t Trigger) String() string {
	return map[Trigger]string{
		TriggerInit:   "init",
		TriggerFilter: "filter",
		TriggerSort:   "sort",
	}[t]
}

// setsLoading is false only for sort changes, which never touch the loading
// flag.
func (t Trigger) setsLoading() bool {
	return t != TriggerSort
}

// FetchedMsg carries a finished fetch back to the event loop.
type FetchedMsg struct {
	Seq      uint64
	Trigger  Trigger
	Products []v1.Product
	Err      error
}

type Options struct {
	PageSize int
	// FenceStaleResponses discards a response when a newer request was issued
	// after it. Without it the last response to arrive wins.
	FenceStaleResponses bool
}

// Controller turns user interactions into store updates. The synchronous part
// of each interaction runs when the method is called; the fetch runs in the
// returned tea.Cmd, and its result is written by Apply.
type Controller struct {
	State *State

	ctx      context.Context
	fetcher  Fetcher
	pageSize int
	fence    bool
	logger   zerolog.Logger

	issued       uint64
	pendingLoads int
}

func NewController(ctx context.Context, state *State, fetcher Fetcher, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	return &Controller{
		State:    state,
		ctx:      ctx,
		fetcher:  fetcher,
		pageSize: opts.PageSize,
		fence:    opts.FenceStaleResponses,
		logger:   logging.NewLogger("controller"),
	}
}

func (c *Controller) PageSize() int { return c.pageSize }

// Init loads the catalog with the current filters and sort key.
func (c *Controller) Init() tea.Cmd {
	c.State.Loading.Write(true)
	return c.fetch(TriggerInit)
}

// FilterChanged is called with the checked categories whenever a filter
// checkbox changes.
func (c *Controller) FilterChanged(selected []string) tea.Cmd {
	c.State.Loading.Write(true)
	c.State.Filters = v1.NewFilterSet(selected...)
	return c.fetch(TriggerFilter)
}

// SortChanged is called with the new value of the sort selector.
func (c *Controller) SortChanged(key v1.SortKey) tea.Cmd {
	c.State.Sort = key
	return c.fetch(TriggerSort)
}

// LoadMore extends the visible window by one page. It reports false when the
// affordance is off and nothing happened.
func (c *Controller) LoadMore() bool {
	if !c.State.CanLoadMore {
		return false
	}
	next, exhausted := pagination.Extend(c.State.Products.Read(), c.State.Visible.Read(), c.pageSize)
	c.State.Visible.Write(next)
	if exhausted {
		c.State.CanLoadMore = false
	}
	return true
}

func (c *Controller) OpenMenu()  { c.State.MenuOpen = true }
func (c *Controller) CloseMenu() { c.State.MenuOpen = false }

func (c *Controller) fetch(trigger Trigger) tea.Cmd {
	c.issued++
	seq := c.issued
	if trigger.setsLoading() {
		c.pendingLoads++
	}

	// capture inputs now; the state may change before the command runs
	filters, key := c.State.Filters, c.State.Sort
	fetcher, ctx := c.fetcher, c.ctx

	c.logger.Debug().
		Uint64("seq", seq).
		Str("trigger", trigger.String()).
		Strs("filters", filters.List()).
		Str("sort", key.String()).
		Msg("fetch issued")

	return func() tea.Msg {
		products, err := fetcher.Fetch(ctx, filters, key)
		return FetchedMsg{Seq: seq, Trigger: trigger, Products: products, Err: err}
	}
}

// Apply writes a finished fetch into the stores. A failed fetch changes
// nothing: products and window stay as they were and a loading flag that was
// raised stays raised.
func (c *Controller) Apply(msg FetchedMsg) {
	log := c.logger.With().Uint64("seq", msg.Seq).Str("trigger", msg.Trigger.String()).Logger()

	if msg.Err != nil {
		if msg.Trigger.setsLoading() {
			c.pendingLoads--
		}
		log.Warn().Err(msg.Err).Msg("fetch failed")
		return
	}

	if c.fence && msg.Seq < c.issued {
		log.Debug().Uint64("latest", c.issued).Msg("discarding stale response")
		if msg.Trigger.setsLoading() {
			c.pendingLoads--
			if c.pendingLoads <= 0 && c.State.Loading.Read() {
				c.State.Loading.Write(false)
			}
		}
		return
	}

	c.State.Products.Write(msg.Products)
	if msg.Trigger.setsLoading() {
		c.pendingLoads--
		c.State.Loading.Write(false)
	}
	c.State.Visible.Write(pagination.FirstPage(msg.Products, c.pageSize))
	c.State.CanLoadMore = true

	log.Debug().Int("products", len(msg.Products)).Msg("fetch applied")
}
