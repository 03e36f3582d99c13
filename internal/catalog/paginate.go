package catalog

import "storefront-service/internal/domain"

// Paginate slices items into the 1-indexed page of the given size and
// returns the visible slice plus the total page count. The slice is clamped
// to the available bounds: an out-of-range page yields an empty slice, never
// a panic. An empty input has zero pages.
func Paginate(items []domain.Product, pageSize, page int) ([]domain.Product, int) {
	if pageSize <= 0 || len(items) == 0 {
		return []domain.Product{}, 0
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(items) {
		return []domain.Product{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
