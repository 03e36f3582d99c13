package catalog

import (
	"context"
	"errors"
	"log"

	"storefront-service/internal/domain"
)

// ErrProductNotFound is returned when a product id is absent from the snapshot.
var ErrProductNotFound = errors.New("catalog: product not found")

// Fetcher abstracts the upstream catalog API for loading.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

// Snapshot holds the catalog for the session lifetime. It is populated by a
// single Load attempt and never refreshed afterwards.
type Snapshot struct {
	products   []domain.Product
	categories []string
	loadErr    error
}

// Load performs the one catalog fetch of the application lifetime.
//
// The product fetch and the category fetch are independent: a product failure
// leaves an empty catalog with a recorded load error (the renderer shows a
// placeholder instead of a grid), while a category failure degrades silently
// to an empty category list. Neither failure is fatal to the process.
func Load(ctx context.Context, f Fetcher, logger *log.Logger) *Snapshot {
	snap := &Snapshot{}

	products, err := f.FetchProducts(ctx)
	if err != nil {
		logger.Printf("ERROR: Catalog product fetch failed: %v", err)
		snap.loadErr = err
	} else {
		snap.products = products
		logger.Printf("INFO: Catalog loaded with %d products", len(products))
	}

	categories, err := f.FetchCategories(ctx)
	if err != nil {
		logger.Printf("WARN: Category fetch failed, filter will offer %q only: %v", domain.CategoryAll, err)
	} else {
		snap.categories = categories
	}

	return snap
}

// Products returns the full product list in catalog order.
func (s *Snapshot) Products() []domain.Product {
	return s.products
}

// Categories returns the fetched category labels, without the "all" sentinel.
func (s *Snapshot) Categories() []string {
	return s.categories
}

// Failed reports whether the product fetch failed.
func (s *Snapshot) Failed() bool {
	return s.loadErr != nil
}

// ProductByID looks up a product by identity.
func (s *Snapshot) ProductByID(id int64) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}
