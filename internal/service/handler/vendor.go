package handler

import (
	"context"
	"fmt"

	"github.com/sandevgo/veractbot/internal/core"
)

type Vendor struct {
	store core.VendorStore
}

func NewVendor(store core.VendorStore) *Vendor {
	return &Vendor{store: store}
}

func (h *Vendor) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	if turn.Intent != core.IntentVendorQuery {
		return "", fmt.Errorf("vendor handler cannot serve intent %q", turn.Intent)
	}
	ent := turn.Entities

	if ent.VendorID != "" {
		v, ok := h.store.Get(ctx, ent.VendorID)
		if !ok {
			return fmt.Sprintf("I couldn't find a vendor with ID '%s'. Please check the ID and try again.", ent.VendorID), nil
		}
		return formatVendorDetails(v), nil
	}

	if ent.VendorName != "" {
		matches := h.store.Search(ctx, ent.VendorName)
		if len(matches) == 0 {
			return fmt.Sprintf("No vendors found matching '%s'.", ent.VendorName), nil
		}
		if len(matches) == 1 {
			return formatVendorDetails(matches[0]), nil
		}
		return formatVendorList(matches), nil
	}

	vendors := h.store.All(ctx)
	if len(vendors) == 0 {
		return "No vendors found in the database.", nil
	}
	return formatVendorList(vendors), nil
}
