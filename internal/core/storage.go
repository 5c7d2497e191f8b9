package core

import "context"

// StoreResult is the outcome of a store mutation. Stores never return Go
// errors for business failures; the message and itemized errors are shown to
// the user verbatim.
type StoreResult struct {
	OK      bool
	Message string
	Errors  []string
}

type ProductFilter struct {
	Query     string
	Category  string
	RatingMin *float64
}

type SaleFilter struct {
	CustomerID string
	Status     string
}

// CatalogStore queries and mutates the product catalog. Queries return an
// empty slice when the backing file is absent or unreadable.
type CatalogStore interface {
	Search(ctx context.Context, f ProductFilter) []Product
	Get(ctx context.Context, id string) (Product, bool)
	TopRated(ctx context.Context, category string, limit int) []Product
	Create(ctx context.Context, p Product) StoreResult
	Update(ctx context.Context, id string, changes map[string]any) StoreResult
}

type SalesStore interface {
	Search(ctx context.Context, f SaleFilter) []Sale
	Get(ctx context.Context, id string) (Sale, bool)
	All(ctx context.Context) []Sale
	Create(ctx context.Context, s Sale) StoreResult
	Update(ctx context.Context, id string, changes map[string]any) StoreResult
}

type VendorStore interface {
	All(ctx context.Context) []Vendor
	Get(ctx context.Context, id string) (Vendor, bool)
	Search(ctx context.Context, query string) []Vendor
}
