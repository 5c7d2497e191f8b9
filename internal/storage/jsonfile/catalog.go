package jsonfile

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sandevgo/veractbot/internal/core"
)

type productsDoc struct {
	Products []core.Product `json:"products"`
}

// Catalog is the whole-file JSON product store. The mutex serializes writers
// across sessions; the file format gives no isolation on its own.
type Catalog struct {
	path string
	mu   sync.Mutex
}

func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

func (c *Catalog) Search(ctx context.Context, f core.ProductFilter) []core.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc productsDoc
	load(ctx, c.path, &doc)

	query := strings.ToLower(f.Query)
	var results []core.Product
	for _, p := range doc.Products {
		match := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		if !match {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.RatingMin != nil && p.Rating < *f.RatingMin {
			continue
		}
		results = append(results, p)
	}
	return results
}

func (c *Catalog) Get(ctx context.Context, id string) (core.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc productsDoc
	load(ctx, c.path, &doc)
	for _, p := range doc.Products {
		if p.ID == id {
			return p, true
		}
	}
	return core.Product{}, false
}

func (c *Catalog) TopRated(ctx context.Context, category string, limit int) []core.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc productsDoc
	load(ctx, c.path, &doc)

	products := doc.Products
	if category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products
}

func (c *Catalog) Create(ctx context.Context, p core.Product) core.StoreResult {
	if errs := core.ValidateProduct(p); len(errs) > 0 {
		return core.StoreResult{Message: "Validation failed", Errors: errs}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var doc productsDoc
	load(ctx, c.path, &doc)

	for _, existing := range doc.Products {
		if existing.ID == p.ID {
			return core.StoreResult{Message: "Product ID already exists", Errors: []string{"Duplicate ID"}}
		}
	}

	if p.CompanyID == "" {
		p.CompanyID = core.DefaultCompanyID
	}
	doc.Products = append(doc.Products, p)

	if !save(ctx, c.path, doc) {
		return core.StoreResult{Message: "Failed to save"}
	}
	return core.StoreResult{OK: true, Message: "Product created successfully"}
}

func (c *Catalog) Update(ctx context.Context, id string, changes map[string]any) core.StoreResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doc productsDoc
	load(ctx, c.path, &doc)

	for i := range doc.Products {
		if doc.Products[i].ID != id {
			continue
		}
		applyProductChanges(&doc.Products[i], changes)
		if !save(ctx, c.path, doc) {
			return core.StoreResult{Message: "Failed to update"}
		}
		return core.StoreResult{OK: true, Message: "Product updated successfully"}
	}
	return core.StoreResult{Message: "Product not found"}
}

func applyProductChanges(p *core.Product, changes map[string]any) {
	for key, value := range changes {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				p.Name = s
			}
		case "category":
			if s, ok := value.(string); ok {
				p.Category = s
			}
		case "brand":
			if s, ok := value.(string); ok {
				p.Brand = s
			}
		case "description":
			if s, ok := value.(string); ok {
				p.Description = s
			}
		case "rating":
			if f, ok := value.(float64); ok {
				p.Rating = f
			}
		}
	}
}
