package catalog

import (
	"testing"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{ID: int64(i + 1)}
	}
	return products
}

func TestPaginate_ThirteenItemsSizeSix(t *testing.T) {
	items := numberedProducts(13)

	visible, totalPages := Paginate(items, 6, 2)

	assert.Equal(t, 3, totalPages)
	require.Len(t, visible, 6)
	// Page 2 covers input indices 6..11.
	assert.Equal(t, int64(7), visible[0].ID)
	assert.Equal(t, int64(12), visible[5].ID)

	visible, totalPages = Paginate(items, 6, 3)
	assert.Equal(t, 3, totalPages)
	require.Len(t, visible, 1)
	assert.Equal(t, int64(13), visible[0].ID)
}

func TestPaginate_FirstPageLength(t *testing.T) {
	for _, tc := range []struct {
		items    int
		pageSize int
		expected int
	}{
		{items: 13, pageSize: 6, expected: 6},
		{items: 4, pageSize: 6, expected: 4},
		{items: 6, pageSize: 6, expected: 6},
		{items: 0, pageSize: 6, expected: 0},
	} {
		visible, _ := Paginate(numberedProducts(tc.items), tc.pageSize, 1)
		assert.Len(t, visible, tc.expected, "items=%d pageSize=%d", tc.items, tc.pageSize)
	}
}

func TestPaginate_EmptyInputHasZeroPages(t *testing.T) {
	visible, totalPages := Paginate(nil, 6, 1)

	assert.Equal(t, 0, totalPages)
	assert.Empty(t, visible)
}

func TestPaginate_OutOfRangePageYieldsEmptySlice(t *testing.T) {
	items := numberedProducts(5)

	visible, totalPages := Paginate(items, 6, 4)
	assert.Equal(t, 1, totalPages)
	assert.Empty(t, visible)

	visible, totalPages = Paginate(items, 6, 0)
	assert.Equal(t, 1, totalPages)
	assert.Empty(t, visible)

	visible, totalPages = Paginate(items, 6, -3)
	assert.Equal(t, 1, totalPages)
	assert.Empty(t, visible)
}

func TestPaginate_Idempotent(t *testing.T) {
	items := numberedProducts(13)

	first, firstTotal := Paginate(items, 6, 2)
	second, secondTotal := Paginate(items, 6, 2)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
	require.Len(t, items, 13, "input is not mutated")
	assert.Equal(t, int64(1), items[0].ID)
}

func TestPaginate_NonPositivePageSize(t *testing.T) {
	visible, totalPages := Paginate(numberedProducts(5), 0, 1)

	assert.Equal(t, 0, totalPages)
	assert.Empty(t, visible)
}
