package cart

import (
	"errors"

	"storefront-service/internal/domain"
)

// Predefined errors for cart operations
var (
	ErrEmpty        = errors.New("cart: cart is empty")
	ErrItemNotFound = errors.New("cart: item not found")
)

// Cart is the session's line-item list. Invariants: at most one line per
// product identity, and every line has quantity >= 1. Lines are kept in
// insertion order.
type Cart struct {
	items []domain.CartItem
}

// New builds a cart from previously persisted lines. Lines that violate the
// invariants (non-positive quantity, duplicate identity) are dropped or
// merged so that a tampered store never produces an invalid cart.
func New(items []domain.CartItem) *Cart {
	c := &Cart{items: make([]domain.CartItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if existing := c.find(item.ID); existing != nil {
			existing.Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add merges the product into the cart: an existing line gets its quantity
// incremented, otherwise a new line is created with quantity 1, snapshotting
// the product's display fields at this moment.
func (c *Cart) Add(p domain.Product) {
	if existing := c.find(p.ID); existing != nil {
		existing.Quantity++
		return
	}
	c.items = append(c.items, domain.CartItem{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

// Remove deletes the line with the given identity.
func (c *Cart) Remove(productID int64) error {
	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Adjust adds delta to the line's quantity. A result of zero or less removes
// the line entirely.
func (c *Cart) Adjust(productID int64, delta int) error {
	item := c.find(productID)
	if item == nil {
		return ErrItemNotFound
	}
	item.Quantity += delta
	if item.Quantity <= 0 {
		return c.Remove(productID)
	}
	return nil
}

// Checkout returns the order total and unconditionally clears the cart. No
// order record is retained. An empty cart is rejected.
func (c *Cart) Checkout() (float64, error) {
	if len(c.items) == 0 {
		return 0, ErrEmpty
	}
	total := c.Total()
	c.items = c.items[:0]
	return total, nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the total item count: the sum of quantities across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) find(productID int64) *domain.CartItem {
	for i := range c.items {
		if c.items[i].ID == productID {
			return &c.items[i]
		}
	}
	return nil
}
