package app

import "storefront-service/internal/domain"

// PageControl is one page-selection control: its number and whether it is
// the currently active page.
type PageControl struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// PaginationView describes the pagination state of the grid.
type PaginationView struct {
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
	Pages      []PageControl `json:"pages,omitempty"`
}

// GridView is the finalized view-model for the product grid. The renderer
// consumes it as-is and produces markup; nothing here requires further
// computation on the rendering side.
type GridView struct {
	Products     []domain.Product `json:"products"`
	Pagination   PaginationView   `json:"pagination"`
	Criteria     domain.Criteria  `json:"criteria"`
	Categories   []string         `json:"categories"`
	CartCount    int              `json:"cart_count"`
	CatalogError bool             `json:"catalog_error"`
	Theme        string           `json:"theme"`
}

// CartView is the finalized view-model for the cart panel.
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

// Confirmation is the result of a successful checkout. The total is reported
// once; no order record is kept afterwards.
type Confirmation struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

// pageControls builds the page-selection controls for 1..totalPages with the
// active page marked. No controls are produced when a single page (or none)
// would be the only choice.
func pageControls(page, totalPages int) []PageControl {
	if totalPages <= 1 {
		return nil
	}
	controls := make([]PageControl, totalPages)
	for i := range controls {
		controls[i] = PageControl{Number: i + 1, Active: i+1 == page}
	}
	return controls
}
