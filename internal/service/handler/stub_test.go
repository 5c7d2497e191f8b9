package handler

import (
	"context"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

// In-memory store doubles shared by the handler tests.

type fakeCatalog struct {
	products   []core.Product
	createErrs []string
	created    []core.Product
	updated    map[string]map[string]any
}

func (f *fakeCatalog) Search(ctx context.Context, q core.ProductFilter) []core.Product {
	var out []core.Product
	for _, p := range f.products {
		if q.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Query)) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.RatingMin != nil && p.Rating < *q.RatingMin {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (core.Product, bool) {
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return core.Product{}, false
}

func (f *fakeCatalog) TopRated(ctx context.Context, category string, limit int) []core.Product {
	out := f.Search(ctx, core.ProductFilter{Category: category})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeCatalog) Create(ctx context.Context, p core.Product) core.StoreResult {
	if len(f.createErrs) > 0 {
		return core.StoreResult{OK: false, Message: "Validation failed", Errors: f.createErrs}
	}
	f.created = append(f.created, p)
	f.products = append(f.products, p)
	return core.StoreResult{OK: true, Message: "Product created successfully"}
}

func (f *fakeCatalog) Update(ctx context.Context, id string, changes map[string]any) core.StoreResult {
	if _, ok := f.Get(ctx, id); !ok {
		return core.StoreResult{OK: false, Message: "Product not found"}
	}
	if f.updated == nil {
		f.updated = make(map[string]map[string]any)
	}
	f.updated[id] = changes
	return core.StoreResult{OK: true, Message: "Product updated successfully"}
}

type fakeSales struct {
	sales   []core.Sale
	created []core.Sale
	updated map[string]map[string]any
}

func (f *fakeSales) Search(ctx context.Context, q core.SaleFilter) []core.Sale {
	var out []core.Sale
	for _, s := range f.sales {
		if q.CustomerID != "" && s.CustomerID != q.CustomerID {
			continue
		}
		if q.Status != "" && s.PaymentStatus != q.Status {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (f *fakeSales) Get(ctx context.Context, id string) (core.Sale, bool) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, true
		}
	}
	return core.Sale{}, false
}

func (f *fakeSales) All(ctx context.Context) []core.Sale {
	return f.sales
}

func (f *fakeSales) Create(ctx context.Context, s core.Sale) core.StoreResult {
	f.created = append(f.created, s)
	f.sales = append(f.sales, s)
	return core.StoreResult{OK: true, Message: "Sale created successfully"}
}

func (f *fakeSales) Update(ctx context.Context, id string, changes map[string]any) core.StoreResult {
	if _, ok := f.Get(ctx, id); !ok {
		return core.StoreResult{OK: false, Message: "Sale not found"}
	}
	if f.updated == nil {
		f.updated = make(map[string]map[string]any)
	}
	f.updated[id] = changes
	return core.StoreResult{OK: true, Message: "Sale updated successfully"}
}

type fakeVendors struct {
	vendors []core.Vendor
}

func (f *fakeVendors) All(ctx context.Context) []core.Vendor {
	return f.vendors
}

func (f *fakeVendors) Get(ctx context.Context, id string) (core.Vendor, bool) {
	for _, v := range f.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return core.Vendor{}, false
}

func (f *fakeVendors) Search(ctx context.Context, query string) []core.Vendor {
	var out []core.Vendor
	for _, v := range f.vendors {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(query)) {
			out = append(out, v)
		}
	}
	return out
}

func floatPtr(v float64) *float64 {
	return &v
}
