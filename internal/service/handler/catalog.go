package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/core"
)

// Catalog serves product intents: searches and detail lookups respond
// directly, creates and updates stage a pending action for confirmation.
type Catalog struct {
	store core.CatalogStore
	cfg   *config.AppConfig
}

func NewCatalog(store core.CatalogStore, cfg *config.AppConfig) *Catalog {
	return &Catalog{store: store, cfg: cfg}
}

func (h *Catalog) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	switch turn.Intent {
	case core.IntentSearchProduct:
		return h.search(ctx, turn, mem), nil
	case core.IntentGetProductDetails:
		return h.details(ctx, turn, mem), nil
	case core.IntentCreateProduct:
		return h.stageCreate(turn, mem), nil
	case core.IntentUpdateProduct:
		return h.stageUpdate(turn, mem), nil
	default:
		return "", fmt.Errorf("catalog handler cannot serve intent %q", turn.Intent)
	}
}

func (h *Catalog) search(ctx context.Context, turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities
	results := h.store.Search(ctx, core.ProductFilter{
		Query:     ent.ProductName,
		Category:  ent.Category,
		RatingMin: ent.RatingMin,
	})

	mem.Set(core.CtxLastSearchResults, results)
	mem.Set(core.CtxLastFilters, ent)
	if len(results) == 1 {
		mem.Set(core.CtxLastProduct, results[0])
		mem.Set(core.CtxLastProductID, results[0].ID)
	}

	if len(results) == 0 {
		return "I couldn't find any products matching your search. Could you try different keywords or specify a category?"
	}
	return formatProductResults(results, h.cfg.SearchResultLimit)
}

func (h *Catalog) details(ctx context.Context, turn *core.Turn, mem core.Memory) string {
	productID := turn.Entities.ProductID
	if productID == "" {
		// Follow-up turns like "show me that product" resolve via context.
		if v, ok := mem.Get(core.CtxLastProductID); ok {
			if s, ok := v.(string); ok {
				productID = s
			}
		}
	}
	if productID == "" {
		return "Could you please provide the product ID? You can say something like 'show details for prod_001'."
	}

	product, found := h.store.Get(ctx, productID)
	if !found {
		return fmt.Sprintf("I couldn't find a product with ID '%s'. Please check the ID and try again.", productID)
	}

	mem.Set(core.CtxLastProduct, product)
	mem.Set(core.CtxLastProductID, product.ID)
	return formatProductDetails(product)
}

func (h *Catalog) stageCreate(turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities

	var rating float64
	if ent.RatingMin != nil {
		rating = *ent.RatingMin
	}
	product := core.Product{
		ID:          ent.ProductID,
		CompanyID:   core.DefaultCompanyID,
		Name:        ent.ProductName,
		Category:    ent.Category,
		Brand:       ent.Brand,
		Description: ent.Description,
		Rating:      rating,
		Variants:    []core.Variant{},
	}

	if errs := core.ValidateProduct(product); len(errs) > 0 {
		return "I need some more information to create this product:\n" +
			bullets(errs) +
			"\nPlease provide the missing details."
	}

	mem.StagePending(core.PendingAction{
		Kind:    core.ActionCreateProduct,
		Product: &product,
	})

	var sb strings.Builder
	sb.WriteString("I'm ready to create a new product with these details:\n\n")
	sb.WriteString(fmt.Sprintf("• Product ID: %s\n", product.ID))
	sb.WriteString(fmt.Sprintf("• Name: %s\n", product.Name))
	sb.WriteString(fmt.Sprintf("• Category: %s\n", product.Category))
	sb.WriteString(fmt.Sprintf("• Brand: %s\n\n", orNA(product.Brand)))
	sb.WriteString("Would you like me to proceed with creating this product? (Yes/No)")
	return sb.String()
}

func (h *Catalog) stageUpdate(turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities

	targetID := ent.ProductID
	if targetID == "" {
		if v, ok := mem.Get(core.CtxLastProductID); ok {
			if s, ok := v.(string); ok {
				targetID = s
			}
		}
	}
	if targetID == "" {
		return "Which product should I update? Please give me its product ID."
	}

	changes := map[string]any{}
	if ent.ProductName != "" {
		changes["name"] = ent.ProductName
	}
	if ent.Category != "" {
		changes["category"] = ent.Category
	}
	if ent.Brand != "" {
		changes["brand"] = ent.Brand
	}
	if ent.Description != "" {
		changes["description"] = ent.Description
	}
	if ent.RatingMin != nil {
		changes["rating"] = *ent.RatingMin
	}
	if len(changes) == 0 {
		return fmt.Sprintf("What would you like to change on product '%s'? You can update the name, category, brand, description or rating.", targetID)
	}

	mem.StagePending(core.PendingAction{
		Kind:     core.ActionUpdateProduct,
		TargetID: targetID,
		Changes:  changes,
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I'm ready to update product '%s' with these changes:\n\n", targetID))
	for _, field := range sortedKeys(changes) {
		sb.WriteString(fmt.Sprintf("• %s → %v\n", field, changes[field]))
	}
	sb.WriteString("\nShall I apply these changes? (Yes/No)")
	return sb.String()
}
