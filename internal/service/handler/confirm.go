package handler

import (
	"context"
	"fmt"

	"github.com/sandevgo/veractbot/internal/core"
)

// Confirmation executes whatever action is staged in memory once the user
// says yes. The pending slot is cleared on every outcome, success or not, so
// a failed write never re-fires on the next affirmative.
type Confirmation struct {
	catalog core.CatalogStore
	sales   core.SalesStore
}

func NewConfirmation(catalog core.CatalogStore, sales core.SalesStore) *Confirmation {
	return &Confirmation{catalog: catalog, sales: sales}
}

func (h *Confirmation) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	pending, ok := mem.Pending()
	if !ok {
		return "There's nothing pending to confirm. How else can I help you?", nil
	}
	defer mem.ClearPending()

	var res core.StoreResult
	switch pending.Kind {
	case core.ActionCreateProduct:
		res = h.catalog.Create(ctx, *pending.Product)
		if res.OK {
			mem.Set(core.CtxLastProduct, *pending.Product)
			mem.Set(core.CtxLastProductID, pending.Product.ID)
			return fmt.Sprintf("✅ Done! Product '%s' (ID: %s) has been created successfully.",
				pending.Product.Name, pending.Product.ID), nil
		}
	case core.ActionUpdateProduct:
		res = h.catalog.Update(ctx, pending.TargetID, pending.Changes)
		if res.OK {
			return fmt.Sprintf("✅ Done! Product '%s' has been updated successfully.", pending.TargetID), nil
		}
	case core.ActionCreateSale:
		res = h.sales.Create(ctx, *pending.Sale)
		if res.OK {
			mem.Set(core.CtxLastSale, *pending.Sale)
			return fmt.Sprintf("✅ Done! Sale '%s' has been recorded successfully.\n\n"+
				"• Customer: %s\n• Total: ₹%s\n• Status: %s",
				pending.Sale.ID, pending.Sale.CustomerID, formatMoney(pending.Sale.Total), pending.Sale.PaymentStatus), nil
		}
	case core.ActionUpdateSale:
		res = h.sales.Update(ctx, pending.TargetID, pending.Changes)
		if res.OK {
			return fmt.Sprintf("✅ Done! Sale '%s' has been updated successfully.", pending.TargetID), nil
		}
	default:
		return "", fmt.Errorf("unknown pending action kind %q", pending.Kind)
	}

	msg := res.Message
	if msg == "" {
		msg = "The action could not be completed."
	}
	out := "❌ " + msg
	for _, e := range res.Errors {
		out += "\n• " + e
	}
	return out, nil
}
