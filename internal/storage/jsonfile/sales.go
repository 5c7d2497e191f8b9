package jsonfile

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/veractbot/internal/core"
)

type salesDoc struct {
	Sales []core.Sale `json:"sales"`
}

type Sales struct {
	path string
	mu   sync.Mutex
}

func NewSales(path string) *Sales {
	return &Sales{path: path}
}

func (s *Sales) Search(ctx context.Context, f core.SaleFilter) []core.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc salesDoc
	load(ctx, s.path, &doc)

	var results []core.Sale
	for _, sale := range doc.Sales {
		if f.CustomerID != "" && sale.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && sale.PaymentStatus != f.Status {
			continue
		}
		results = append(results, sale)
	}
	return results
}

func (s *Sales) Get(ctx context.Context, id string) (core.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc salesDoc
	load(ctx, s.path, &doc)
	for _, sale := range doc.Sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return core.Sale{}, false
}

func (s *Sales) All(ctx context.Context) []core.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc salesDoc
	load(ctx, s.path, &doc)
	return doc.Sales
}

func (s *Sales) Create(ctx context.Context, sale core.Sale) core.StoreResult {
	if errs := core.ValidateSale(sale); len(errs) > 0 {
		return core.StoreResult{Message: "Validation failed", Errors: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var doc salesDoc
	load(ctx, s.path, &doc)

	if sale.CompanyID == "" {
		sale.CompanyID = core.DefaultCompanyID
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	doc.Sales = append(doc.Sales, sale)

	if !save(ctx, s.path, doc) {
		return core.StoreResult{Message: "Failed to save"}
	}
	return core.StoreResult{OK: true, Message: "Sale created successfully"}
}

func (s *Sales) Update(ctx context.Context, id string, changes map[string]any) core.StoreResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc salesDoc
	load(ctx, s.path, &doc)

	for i := range doc.Sales {
		if doc.Sales[i].ID != id {
			continue
		}
		applySaleChanges(&doc.Sales[i], changes)
		if !save(ctx, s.path, doc) {
			return core.StoreResult{Message: "Failed to update"}
		}
		return core.StoreResult{OK: true, Message: "Sale updated successfully"}
	}
	return core.StoreResult{Message: "Sale not found"}
}

func applySaleChanges(sale *core.Sale, changes map[string]any) {
	for key, value := range changes {
		switch key {
		case "customer_id":
			if s, ok := value.(string); ok {
				sale.CustomerID = s
			}
		case "payment_status":
			if s, ok := value.(string); ok {
				sale.PaymentStatus = s
			}
		case "total":
			if f, ok := value.(float64); ok {
				sale.Total = f
			}
		case "discount":
			if f, ok := value.(float64); ok {
				sale.Discount = f
			}
		}
	}
}
