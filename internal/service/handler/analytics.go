package handler

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/core"
)

type Analytics struct {
	sales   core.SalesStore
	catalog core.CatalogStore
	cfg     *config.AppConfig
}

func NewAnalytics(sales core.SalesStore, catalog core.CatalogStore, cfg *config.AppConfig) *Analytics {
	return &Analytics{sales: sales, catalog: catalog, cfg: cfg}
}

func (h *Analytics) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	switch turn.Intent {
	case core.IntentGetAnalytics:
		return h.summary(ctx), nil
	case core.IntentGetRecommendations:
		return h.recommend(ctx, turn, mem), nil
	default:
		return "", fmt.Errorf("analytics handler cannot serve intent %q", turn.Intent)
	}
}

func (h *Analytics) summary(ctx context.Context) string {
	sales := h.sales.All(ctx)
	if len(sales) == 0 {
		return "There are no sales records yet, so I can't produce an analytics summary."
	}

	var revenue float64
	var paid, pending, cancelled int
	itemCounts := map[string]int{}
	for _, s := range sales {
		revenue += s.Total
		switch s.PaymentStatus {
		case "PAID":
			paid++
		case "PENDING":
			pending++
		case "CANCELLED":
			cancelled++
		}
		for _, it := range s.Items {
			itemCounts[it.VariantID] += it.Qty
		}
	}
	avg := revenue / float64(len(sales))
	completion := float64(paid) / float64(len(sales)) * 100

	var sb strings.Builder
	sb.WriteString("📊 **Sales Analytics Summary**\n\n")
	sb.WriteString(fmt.Sprintf("• Total Sales: %d\n", len(sales)))
	sb.WriteString(fmt.Sprintf("• Total Revenue: ₹%s\n", formatMoney(revenue)))
	sb.WriteString(fmt.Sprintf("• Average Sale Value: ₹%s\n", formatMoney(avg)))
	sb.WriteString(fmt.Sprintf("• Paid: %d | Pending: %d | Cancelled: %d\n", paid, pending, cancelled))
	sb.WriteString(fmt.Sprintf("• Completion Rate: %.1f%%\n", completion))

	if len(itemCounts) > 0 {
		type itemCount struct {
			name  string
			count int
		}
		items := make([]itemCount, 0, len(itemCounts))
		for name, count := range itemCounts {
			items = append(items, itemCount{name, count})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].count != items[j].count {
				return items[i].count > items[j].count
			}
			return items[i].name < items[j].name
		})
		sb.WriteString("\n🏆 **Top Selling Items**\n")
		for i, it := range items {
			if i >= 3 {
				break
			}
			sb.WriteString(fmt.Sprintf("%d. %s (%d sold)\n", i+1, it.name, it.count))
		}
	}
	return sb.String()
}

func (h *Analytics) recommend(ctx context.Context, turn *core.Turn, mem core.Memory) string {
	limit := turn.Entities.Limit
	if limit <= 0 {
		limit = h.cfg.RecommendationLimit
	}
	products := h.catalog.TopRated(ctx, turn.Entities.Category, limit)
	if len(products) == 0 {
		return "I don't have any products to recommend right now. Try adding some products first."
	}

	mem.Set(core.CtxLastSearchResults, products)
	if len(products) == 1 {
		mem.Set(core.CtxLastProduct, products[0])
		mem.Set(core.CtxLastProductID, products[0].ID)
	}

	var sb strings.Builder
	sb.WriteString("✨ **Recommended for you**\n\n")
	for i, p := range products {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s) %s\n", i+1, p.Name, orNA(p.Brand), stars(p.Rating)))
	}
	sb.WriteString("\nWant details on any of these? Just ask with the product name or ID.")
	return sb.String()
}
