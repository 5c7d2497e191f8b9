package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/core"
)

type Sales struct {
	store core.SalesStore
	cfg   *config.AppConfig
}

func NewSales(store core.SalesStore, cfg *config.AppConfig) *Sales {
	return &Sales{store: store, cfg: cfg}
}

func (h *Sales) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	switch turn.Intent {
	case core.IntentSearchSales:
		return h.search(ctx, turn, mem), nil
	case core.IntentCreateSale:
		return h.stageCreate(turn, mem), nil
	case core.IntentUpdateSale:
		return h.stageUpdate(turn, mem), nil
	default:
		return "", fmt.Errorf("sales handler cannot serve intent %q", turn.Intent)
	}
}

func (h *Sales) search(ctx context.Context, turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities
	results := h.store.Search(ctx, core.SaleFilter{
		CustomerID: ent.CustomerID,
		Status:     ent.Status,
	})

	if len(results) > 0 {
		mem.Set(core.CtxLastSale, results[0])
	} else {
		mem.Set(core.CtxLastSale, nil)
	}

	if len(results) == 0 {
		return "I couldn't find any sales records matching your criteria. Try adjusting your search parameters."
	}
	return formatSalesResults(results, h.cfg.SearchResultLimit)
}

func (h *Sales) stageCreate(turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities

	saleID := ent.SaleID
	if saleID == "" {
		saleID = "sale_" + uuid.NewString()[:8]
	}
	status := ent.Status
	if status == "" {
		status = "PENDING"
	}
	var total, discount float64
	if ent.Total != nil {
		total = *ent.Total
	}
	if ent.Discount != nil {
		discount = *ent.Discount
	}

	sale := core.Sale{
		ID:            saleID,
		CompanyID:     core.DefaultCompanyID,
		CustomerID:    ent.CustomerID,
		Total:         total,
		Discount:      discount,
		PaymentStatus: status,
		Items:         []core.SaleItem{},
	}

	if errs := core.ValidateSale(sale); len(errs) > 0 {
		return "I need more information to create this sale:\n" +
			bullets(errs) +
			"\nPlease provide the missing details."
	}

	mem.StagePending(core.PendingAction{
		Kind: core.ActionCreateSale,
		Sale: &sale,
	})

	var sb strings.Builder
	sb.WriteString("I'm ready to create a new sale:\n\n")
	sb.WriteString(fmt.Sprintf("• Sale ID: %s\n", sale.ID))
	sb.WriteString(fmt.Sprintf("• Customer ID: %s\n", sale.CustomerID))
	sb.WriteString(fmt.Sprintf("• Total: ₹%s\n", formatMoney(sale.Total)))
	sb.WriteString(fmt.Sprintf("• Status: %s\n\n", sale.PaymentStatus))
	sb.WriteString("Shall I proceed with creating this sale? (Yes/No)")
	return sb.String()
}

func (h *Sales) stageUpdate(turn *core.Turn, mem core.Memory) string {
	ent := turn.Entities

	targetID := ent.SaleID
	if targetID == "" {
		if v, ok := mem.Get(core.CtxLastSale); ok {
			if sale, ok := v.(core.Sale); ok {
				targetID = sale.ID
			}
		}
	}
	if targetID == "" {
		return "Which sale should I update? Please give me its sale ID."
	}

	changes := map[string]any{}
	if ent.CustomerID != "" {
		changes["customer_id"] = ent.CustomerID
	}
	if ent.Status != "" {
		changes["payment_status"] = ent.Status
	}
	if ent.Total != nil {
		changes["total"] = *ent.Total
	}
	if ent.Discount != nil {
		changes["discount"] = *ent.Discount
	}
	if len(changes) == 0 {
		return fmt.Sprintf("What would you like to change on sale '%s'? You can update the total, discount, payment status or customer.", targetID)
	}

	mem.StagePending(core.PendingAction{
		Kind:     core.ActionUpdateSale,
		TargetID: targetID,
		Changes:  changes,
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I'm ready to update sale '%s' with these changes:\n\n", targetID))
	for _, field := range sortedKeys(changes) {
		sb.WriteString(fmt.Sprintf("• %s → %v\n", field, changes[field]))
	}
	sb.WriteString("\nShall I apply these changes? (Yes/No)")
	return sb.String()
}
