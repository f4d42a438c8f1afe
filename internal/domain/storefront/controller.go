// internal/domain/storefront/controller.go
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/domain/favorites"
	"github.com/your-org/shoplight-backend/internal/pkg/debounce"
)

// Renderer is the view collaborator. It receives derived product lists and
// calls back into the stores for mutations; it never touches store internals.
type Renderer interface {
	RenderProducts(products []catalog.Product)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(products []catalog.Product)

// RenderProducts calls f.
func (f RendererFunc) RenderProducts(products []catalog.Product) {
	f(products)
}

// Controller drives the derived product list for one session. Category and
// sort changes re-render immediately; query changes are debounced so rapid
// keystrokes collapse into a single recomputation after input pauses.
type Controller struct {
	catalog   *catalog.Service
	favorites *favorites.Service
	renderer  Renderer
	sessionID string

	mu       sync.Mutex
	filter   catalog.ListRequest
	debounce *debounce.Debouncer
}

// NewController creates a controller for the session. A non-positive delay
// uses the default search debounce interval.
func NewController(catalogSvc *catalog.Service, favoritesSvc *favorites.Service, renderer Renderer, sessionID string, delay time.Duration) *Controller {
	c := &Controller{
		catalog:   catalogSvc,
		favorites: favoritesSvc,
		renderer:  renderer,
		sessionID: sessionID,
		filter: catalog.ListRequest{
			Category: catalog.CategoryAll,
			SortKey:  catalog.SortDefault,
		},
	}
	c.debounce = debounce.New(delay, func() { c.Refresh(context.Background()) })
	return c
}

// SetQuery updates the search text and schedules a debounced re-render,
// replacing any pending one.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.filter.Query = query
	c.mu.Unlock()
	c.debounce.Trigger()
}

// SetCategory updates the category filter and re-renders immediately.
func (c *Controller) SetCategory(ctx context.Context, category string) {
	c.mu.Lock()
	c.filter.Category = category
	c.mu.Unlock()
	c.debounce.Stop()
	c.Refresh(ctx)
}

// SetSortKey updates the sort key and re-renders immediately.
func (c *Controller) SetSortKey(ctx context.Context, sortKey string) {
	c.mu.Lock()
	c.filter.SortKey = sortKey
	c.mu.Unlock()
	c.debounce.Stop()
	c.Refresh(ctx)
}

// Filter returns a snapshot of the current filter state.
func (c *Controller) Filter() catalog.ListRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Refresh recomputes the derived list against the session's current
// favorites and pushes it to the renderer.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	req := c.filter
	c.mu.Unlock()

	list := c.catalog.List(&req, c.favorites.Contains(ctx, c.sessionID))
	c.renderer.RenderProducts(list)
}

// Close cancels any pending debounced re-render.
func (c *Controller) Close() {
	c.debounce.Stop()
}
