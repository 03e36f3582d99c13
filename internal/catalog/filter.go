package catalog

import (
	"strings"

	"storefront-service/internal/domain"
)

// Filter returns the products matching the criteria, preserving catalog
// order. A product matches when the query is a case-insensitive substring of
// its title or description, its category equals the selector (unless the
// selector is the "all" sentinel) and its price does not exceed the ceiling
// (inclusive). An empty query matches every product.
func Filter(products []domain.Product, c domain.Criteria) []domain.Product {
	query := strings.ToLower(c.Query)

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		matchesQuery := strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := c.Category == domain.CategoryAll || p.Category == c.Category
		matchesPrice := p.Price <= c.MaxPrice

		if matchesQuery && matchesCategory && matchesPrice {
			matched = append(matched, p)
		}
	}
	return matched
}
