package catalog

import (
	"context"
	"time"

	"github.com/premstore-git/premium-store-api/models"
	"github.com/premstore-git/premium-store-api/store"
)

// Catalog owns the sellable product list. Like the rest of the storefront it
// rewrites the whole list on every mutation.
type Catalog struct {
	store store.Store
}

func NewCatalog(s store.Store) *Catalog {
	return &Catalog{store: s}
}

// Initialize seeds the fixed sample catalog when no products exist yet.
// Safe to call on every startup.
func (c *Catalog) Initialize(ctx context.Context) error {
	_, found, err := c.store.Get(ctx, store.ProductsKey)
	if err != nil || found {
		return err
	}
	return store.SetJSON(ctx, c.store, store.ProductsKey, models.SampleProducts())
}

// List returns a fresh snapshot of the catalog.
func (c *Catalog) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if _, err := store.GetJSON(ctx, c.store, store.ProductsKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product with the given id, or nil when absent.
func (c *Catalog) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the product matching by id, or appends it when new.
// UpdatedAt is refreshed on every edit.
func (c *Catalog) Upsert(ctx context.Context, product models.Product) error {
	products, err := c.List(ctx)
	if err != nil {
		return err
	}
	product.UpdatedAt = time.Now()
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	return store.SetJSON(ctx, c.store, store.ProductsKey, products)
}

// Delete removes the product with the given id. Deleting an absent id is a
// no-op, not an error.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	products, err := c.List(ctx)
	if err != nil {
		return err
	}
	filtered := products[:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return store.SetJSON(ctx, c.store, store.ProductsKey, filtered)
}
