package catalog

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher is a canned Fetcher for snapshot tests.
type stubFetcher struct {
	products      []domain.Product
	productsErr   error
	categories    []string
	categoriesErr error
}

func (f *stubFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.productsErr
}

func (f *stubFetcher) FetchCategories(ctx context.Context) ([]string, error) {
	return f.categories, f.categoriesErr
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoad_Success(t *testing.T) {
	fetcher := &stubFetcher{
		products:   sampleProducts(),
		categories: []string{"electronics", "jewelery"},
	}

	snap := Load(context.Background(), fetcher, discardLogger())

	assert.False(t, snap.Failed())
	assert.Equal(t, fetcher.products, snap.Products())
	assert.Equal(t, fetcher.categories, snap.Categories())
}

func TestLoad_ProductFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{
		productsErr: errors.New("upstream unavailable"),
		categories:  []string{"electronics"},
	}

	snap := Load(context.Background(), fetcher, discardLogger())

	assert.True(t, snap.Failed(), "product failure is recorded for the error placeholder")
	assert.Empty(t, snap.Products())
	assert.Equal(t, []string{"electronics"}, snap.Categories(),
		"the category fetch is independent of the product fetch")
}

func TestLoad_CategoryFetchFailureDegradesSilently(t *testing.T) {
	fetcher := &stubFetcher{
		products:      sampleProducts(),
		categoriesErr: errors.New("upstream unavailable"),
	}

	snap := Load(context.Background(), fetcher, discardLogger())

	assert.False(t, snap.Failed(), "category failure alone is not a load error")
	assert.Equal(t, fetcher.products, snap.Products())
	assert.Empty(t, snap.Categories())
}

func TestSnapshot_ProductByID(t *testing.T) {
	snap := Load(context.Background(), &stubFetcher{products: sampleProducts()}, discardLogger())

	product, err := snap.ProductByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Portable SSD", product.Title)

	_, err = snap.ProductByID(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProductNotFound))
}
