package domain

// Product is one catalog entry as served by the upstream catalog API.
// Products are immutable once fetched; the catalog snapshot owns them for
// the session lifetime. The json tags match the upstream wire format.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"` // Non-negative. A payment path would use a decimal type instead.
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the aggregate customer rating attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"` // 0..5
	Count int     `json:"count"`
}

// CategoryAll is the sentinel category label meaning "no category filter".
const CategoryAll = "all"

// Criteria is the combined filter input: free-text query, category selector
// and an inclusive price ceiling.
type Criteria struct {
	Query    string  `json:"query"`
	Category string  `json:"category"`
	MaxPrice float64 `json:"max_price"`
}

// CartItem is one cart line: a product identity plus a snapshot of the
// display fields taken at add time. Later catalog changes do not affect
// existing lines. Quantity is always >= 1; a line that would drop to zero
// is removed instead.
type CartItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
