package jsonfile

import (
	"context"
	"time"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/pkg/log"
)

// Seed writes demo fixtures into any store file that is missing or nearly
// empty. Existing data is left alone.
func Seed(ctx context.Context, productsPath, salesPath, vendorsPath string) {
	logger := log.FromCtx(ctx)

	var products productsDoc
	load(ctx, productsPath, &products)
	if len(products.Products) < 3 {
		if save(ctx, productsPath, productsDoc{Products: sampleProducts()}) {
			logger.Info().Str("path", productsPath).Msg("products database initialized")
		}
	}

	var sales salesDoc
	load(ctx, salesPath, &sales)
	if len(sales.Sales) < 2 {
		if save(ctx, salesPath, salesDoc{Sales: sampleSales()}) {
			logger.Info().Str("path", salesPath).Msg("sales database initialized")
		}
	}

	var vendors vendorsDoc
	load(ctx, vendorsPath, &vendors)
	if len(vendors.Vendors) == 0 {
		if save(ctx, vendorsPath, vendorsDoc{Vendors: sampleVendors()}) {
			logger.Info().Str("path", vendorsPath).Msg("vendors database initialized")
		}
	}
}

func sampleProducts() []core.Product {
	return []core.Product{
		{
			ID:          "prod_001",
			CompanyID:   core.DefaultCompanyID,
			Name:        "Apple iPhone 15 Pro",
			Category:    "Electronics",
			Description: "Latest flagship smartphone with A17 Pro chip and titanium design",
			Brand:       "Apple",
			Rating:      4.8,
			Variants:    []core.Variant{},
		},
		{
			ID:          "prod_002",
			CompanyID:   core.DefaultCompanyID,
			Name:        "Samsung Galaxy S24 Ultra",
			Category:    "Electronics",
			Description: "Premium Android smartphone with S Pen and 200MP camera",
			Brand:       "Samsung",
			Rating:      4.7,
			Variants:    []core.Variant{},
		},
		{
			ID:          "prod_003",
			CompanyID:   core.DefaultCompanyID,
			Name:        "Nike Air Max 270",
			Category:    "Sports",
			Description: "Comfortable running shoes with Max Air cushioning",
			Brand:       "Nike",
			Rating:      4.5,
			Variants:    []core.Variant{},
		},
		{
			ID:          "prod_004",
			CompanyID:   core.DefaultCompanyID,
			Name:        "Sony WH-1000XM5",
			Category:    "Electronics",
			Description: "Premium noise-cancelling wireless headphones",
			Brand:       "Sony",
			Rating:      4.9,
			Variants:    []core.Variant{},
		},
		{
			ID:          "prod_005",
			CompanyID:   core.DefaultCompanyID,
			Name:        "Levi's 501 Original Jeans",
			Category:    "Fashion",
			Description: "Classic straight fit denim jeans",
			Brand:       "Levi's",
			Rating:      4.6,
			Variants:    []core.Variant{},
		},
	}
}

func sampleSales() []core.Sale {
	return []core.Sale{
		{
			ID:            "sale_001",
			CompanyID:     core.DefaultCompanyID,
			CustomerID:    "cust_001",
			InvoiceNumber: "INV-2025-001",
			Total:         79999,
			Discount:      0,
			PaymentStatus: "PAID",
			CreatedAt:     time.Date(2025, 2, 15, 14, 22, 0, 0, time.UTC),
			Items:         []core.SaleItem{},
		},
		{
			ID:            "sale_002",
			CompanyID:     core.DefaultCompanyID,
			CustomerID:    "cust_002",
			InvoiceNumber: "INV-2025-002",
			Total:         24999,
			Discount:      1000,
			PaymentStatus: "PENDING",
			CreatedAt:     time.Date(2025, 2, 16, 10, 15, 0, 0, time.UTC),
			Items:         []core.SaleItem{},
		},
	}
}

func sampleVendors() []core.Vendor {
	return []core.Vendor{
		{
			ID:      "vendor_001",
			Name:    "Tech Supplies India",
			Contact: "Rajesh Kumar",
			Email:   "rajesh@techsupplies.in",
			Phone:   "+91-9876543210",
		},
		{
			ID:      "vendor_002",
			Name:    "Fashion Wholesale Co",
			Contact: "Priya Sharma",
			Email:   "priya@fashionwholesale.com",
			Phone:   "+91-9876543211",
		},
	}
}
