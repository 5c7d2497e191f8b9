package core

import "time"

const (
	VeractName          = "Veract Sales Assistant"
	VeractUserAgent     = "VeractBot/0.1"
	VeractRepositoryURL = "https://github.com/sandevgo/veractbot"
	VeractVersion       = "0.1.0"

	// DefaultCompanyID is stamped onto every record created through the
	// assistant until multi-tenant support lands.
	DefaultCompanyID = "comp_001"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Product is a catalog record. Variants are opaque to the assistant and are
// round-tripped so the catalog file stays intact.
type Product struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Rating      float64   `json:"rating"`
	Variants    []Variant `json:"variants"`
}

type Variant struct {
	ID    string  `json:"id"`
	SKU   string  `json:"sku,omitempty"`
	Price float64 `json:"price,omitempty"`
	Stock int     `json:"stock,omitempty"`
}

type Sale struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	CustomerID    string     `json:"customer_id"`
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	Total         float64    `json:"total"`
	Discount      float64    `json:"discount"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
	Items         []SaleItem `json:"items"`
}

type SaleItem struct {
	VariantID string  `json:"variant_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price,omitempty"`
}

type Vendor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
