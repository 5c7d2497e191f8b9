package jsonfile

import (
	"context"
	"strings"
	"sync"

	"github.com/sandevgo/veractbot/internal/core"
)

type vendorsDoc struct {
	Vendors []core.Vendor `json:"vendors"`
}

// Vendors is read-only: the assistant answers vendor queries but never
// mutates the registry.
type Vendors struct {
	path string
	mu   sync.Mutex
}

func NewVendors(path string) *Vendors {
	return &Vendors{path: path}
}

func (v *Vendors) All(ctx context.Context) []core.Vendor {
	v.mu.Lock()
	defer v.mu.Unlock()

	var doc vendorsDoc
	load(ctx, v.path, &doc)
	return doc.Vendors
}

func (v *Vendors) Get(ctx context.Context, id string) (core.Vendor, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var doc vendorsDoc
	load(ctx, v.path, &doc)
	for _, vendor := range doc.Vendors {
		if vendor.ID == id {
			return vendor, true
		}
	}
	return core.Vendor{}, false
}

func (v *Vendors) Search(ctx context.Context, query string) []core.Vendor {
	v.mu.Lock()
	defer v.mu.Unlock()

	var doc vendorsDoc
	load(ctx, v.path, &doc)

	query = strings.ToLower(query)
	var results []core.Vendor
	for _, vendor := range doc.Vendors {
		if strings.Contains(strings.ToLower(vendor.Name), query) {
			results = append(results, vendor)
		}
	}
	return results
}
