package handler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Response formatting, kept close to what the assistant has always said:
// markdown lists with a few emoji, amounts in rupees.

func formatMoney(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var negative bool
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}

	out := sb.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

func stars(rating float64) string {
	n := int(rating)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("⭐", n)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatProductResults(products []core.Product, limit int) string {
	if len(products) == 0 {
		return "No products found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I found %d product(s):\n\n", len(products)))

	shown := products
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, p := range shown {
		sb.WriteString(fmt.Sprintf("%d. **%s**\n", i+1, orNA(p.Name)))
		sb.WriteString(fmt.Sprintf("   • ID: %s\n", p.ID))
		sb.WriteString(fmt.Sprintf("   • Category: %s\n", orNA(p.Category)))
		sb.WriteString(fmt.Sprintf("   • Brand: %s\n", orNA(p.Brand)))
		sb.WriteString(fmt.Sprintf("   • Rating: %s\n", stars(p.Rating)))
		desc := p.Description
		if desc == "" {
			desc = "No description"
		}
		sb.WriteString(fmt.Sprintf("   • Description: %s\n\n", desc))
	}

	if len(products) > len(shown) {
		sb.WriteString(fmt.Sprintf("...and %d more products.\n", len(products)-len(shown)))
	}
	return sb.String()
}

func formatProductDetails(p core.Product) string {
	var sb strings.Builder
	sb.WriteString("📦 **Product Details**\n\n")
	sb.WriteString(fmt.Sprintf("**%s**\n\n", orNA(p.Name)))
	sb.WriteString(fmt.Sprintf("• ID: %s\n", p.ID))
	sb.WriteString(fmt.Sprintf("• Category: %s\n", orNA(p.Category)))
	sb.WriteString(fmt.Sprintf("• Brand: %s\n", orNA(p.Brand)))
	sb.WriteString(fmt.Sprintf("• Rating: %.1f/5 %s\n", p.Rating, stars(p.Rating)))
	desc := p.Description
	if desc == "" {
		desc = "No description available"
	}
	sb.WriteString(fmt.Sprintf("• Description: %s\n", desc))
	if len(p.Variants) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Available Variants:** %d\n", len(p.Variants)))
	}
	return sb.String()
}

func formatSalesResults(sales []core.Sale, limit int) string {
	if len(sales) == 0 {
		return "No sales found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I found %d sale(s):\n\n", len(sales)))

	shown := sales
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, s := range shown {
		sb.WriteString(fmt.Sprintf("%d. **Sale %s**\n", i+1, s.ID))
		sb.WriteString(fmt.Sprintf("   • Customer: %s\n", s.CustomerID))
		sb.WriteString(fmt.Sprintf("   • Total: ₹%s\n", formatMoney(s.Total)))
		status := s.PaymentStatus
		if status == "" {
			status = "UNKNOWN"
		}
		sb.WriteString(fmt.Sprintf("   • Status: %s\n", status))
		date := "N/A"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format("2006-01-02 15:04")
		}
		sb.WriteString(fmt.Sprintf("   • Date: %s\n\n", date))
	}

	if len(sales) > len(shown) {
		sb.WriteString(fmt.Sprintf("...and %d more sales.\n", len(sales)-len(shown)))
	}
	return sb.String()
}

func formatVendorList(vendors []core.Vendor) string {
	var sb strings.Builder
	for i, v := range vendors {
		sb.WriteString(fmt.Sprintf("%d. **%s**\n", i+1, orNA(v.Name)))
		sb.WriteString(fmt.Sprintf("   • ID: %s\n", v.ID))
		sb.WriteString(fmt.Sprintf("   • Contact: %s\n\n", orNA(v.Contact)))
	}
	return sb.String()
}

func formatVendorDetails(v core.Vendor) string {
	var sb strings.Builder
	sb.WriteString("🏢 **Vendor Details**\n\n")
	sb.WriteString(fmt.Sprintf("**%s**\n\n", orNA(v.Name)))
	sb.WriteString(fmt.Sprintf("• ID: %s\n", v.ID))
	sb.WriteString(fmt.Sprintf("• Contact: %s\n", orNA(v.Contact)))
	sb.WriteString(fmt.Sprintf("• Email: %s\n", orNA(v.Email)))
	sb.WriteString(fmt.Sprintf("• Phone: %s\n", orNA(v.Phone)))
	return sb.String()
}

func bullets(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("• " + item + "\n")
	}
	return sb.String()
}
