package app

import (
	"context"
	"log"
	"sync"

	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/domain"
	"storefront-service/internal/store"

	"github.com/google/uuid"
)

// Options carries the storefront defaults from configuration.
type Options struct {
	PageSize int     // items per grid page
	MaxPrice float64 // initial price ceiling, also the filter's upper bound
}

// App is the session state container. It owns the catalog snapshot, the
// filtered subset, the filter criteria, the current page, the cart and the
// theme preference, and keeps them consistent with each other and with the
// persistence adapter. Engines (Filter, Paginate) stay pure; every state
// transition goes through a method here.
//
// The mutex serializes handler-driven transitions: the modeled flow is
// sequential event handling, but the HTTP server delivers events
// concurrently.
type App struct {
	mu     sync.Mutex
	logger *log.Logger
	storer store.SessionStorer

	snapshot *catalog.Snapshot
	filtered []domain.Product
	criteria domain.Criteria
	page     int
	pageSize int

	cart  *cart.Cart
	theme string
}

// New builds the state container. The filtered subset is seeded with the
// full catalog, the criteria with the neutral defaults (empty query, "all"
// category, configured price ceiling) and the page with 1.
func New(snap *catalog.Snapshot, initialCart []domain.CartItem, theme string, storer store.SessionStorer, opts Options, logger *log.Logger) *App {
	if theme != store.ThemeDark {
		theme = store.ThemeLight
	}
	return &App{
		logger:   logger,
		storer:   storer,
		snapshot: snap,
		filtered: snap.Products(),
		criteria: domain.Criteria{Category: domain.CategoryAll, MaxPrice: opts.MaxPrice},
		page:     1,
		pageSize: opts.PageSize,
		cart:     cart.New(initialCart),
		theme:    theme,
	}
}

// GridView returns the current grid view-model.
func (a *App) GridView() GridView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gridViewLocked()
}

// ApplyFilter recomputes the filtered subset for the new criteria and resets
// the page to 1 in the same transition. Filtering and pagination are coupled
// only through this reset; callers never sequence the two themselves.
func (a *App) ApplyFilter(criteria domain.Criteria) GridView {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.criteria = criteria
	a.filtered = catalog.Filter(a.snapshot.Products(), criteria)
	a.page = 1
	return a.gridViewLocked()
}

// SetPage selects the given page. The page is not clamped against the total:
// an out-of-range selection simply renders an empty page.
func (a *App) SetPage(page int) GridView {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.page = page
	return a.gridViewLocked()
}

// ProductDetail looks up a product for the detail view.
func (a *App) ProductDetail(productID int64) (domain.Product, error) {
	return a.snapshot.ProductByID(productID)
}

// CartView returns the current cart view-model.
func (a *App) CartView() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartViewLocked()
}

// AddToCart resolves the product in the catalog and merges it into the cart.
// An unknown id (a stale reference) is a silent no-op, not an error.
func (a *App) AddToCart(ctx context.Context, productID int64) CartView {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, err := a.snapshot.ProductByID(productID)
	if err != nil {
		a.logger.Printf("WARN: AddToCart ignored unknown product id %d", productID)
		return a.cartViewLocked()
	}
	a.cart.Add(product)
	a.persistCartLocked(ctx)
	return a.cartViewLocked()
}

// RemoveFromCart deletes the line with the given identity, no-op if absent.
func (a *App) RemoveFromCart(ctx context.Context, productID int64) CartView {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.cart.Remove(productID); err != nil {
		return a.cartViewLocked()
	}
	a.persistCartLocked(ctx)
	return a.cartViewLocked()
}

// AdjustQuantity adds delta to the line's quantity; a result of zero or less
// removes the line. Absent identities are a no-op.
func (a *App) AdjustQuantity(ctx context.Context, productID int64, delta int) CartView {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.cart.Adjust(productID, delta); err != nil {
		return a.cartViewLocked()
	}
	a.persistCartLocked(ctx)
	return a.cartViewLocked()
}

// Checkout computes the order total, clears the cart and persists the empty
// list. cart.ErrEmpty is returned for an empty cart so the surface can show
// the "empty cart" signal.
func (a *App) Checkout(ctx context.Context) (Confirmation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	total, err := a.cart.Checkout()
	if err != nil {
		return Confirmation{}, err
	}
	a.persistCartLocked(ctx)

	confirmation := Confirmation{OrderID: uuid.NewString(), Total: total}
	a.logger.Printf("INFO: Order %s placed for %.2f, cart cleared", confirmation.OrderID, confirmation.Total)
	return confirmation, nil
}

// Theme returns the current theme preference.
func (a *App) Theme() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// ToggleTheme flips the preference between dark and light and persists it.
func (a *App) ToggleTheme(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.theme == store.ThemeDark {
		a.theme = store.ThemeLight
	} else {
		a.theme = store.ThemeDark
	}
	if err := a.storer.SaveTheme(ctx, a.theme); err != nil {
		a.logger.Printf("ERROR: Failed to persist theme preference: %v", err)
	}
	return a.theme
}

// persistCartLocked is the synchronous write-through after a cart mutation.
// A storage failure keeps the in-memory cart authoritative for the rest of
// the session.
func (a *App) persistCartLocked(ctx context.Context) {
	if err := a.storer.SaveCart(ctx, a.cart.Items()); err != nil {
		a.logger.Printf("ERROR: Failed to persist cart: %v", err)
	}
}

func (a *App) gridViewLocked() GridView {
	visible, totalPages := catalog.Paginate(a.filtered, a.pageSize, a.page)
	return GridView{
		Products: visible,
		Pagination: PaginationView{
			Page:       a.page,
			PageSize:   a.pageSize,
			TotalItems: len(a.filtered),
			TotalPages: totalPages,
			Pages:      pageControls(a.page, totalPages),
		},
		Criteria:     a.criteria,
		Categories:   a.snapshot.Categories(),
		CartCount:    a.cart.Count(),
		CatalogError: a.snapshot.Failed(),
		Theme:        a.theme,
	}
}

func (a *App) cartViewLocked() CartView {
	return CartView{
		Items: a.cart.Items(),
		Count: a.cart.Count(),
		Total: a.cart.Total(),
	}
}
