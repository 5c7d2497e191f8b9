package core

// Intent is the closed classification of what a turn is asking for.
type Intent string

const (
	IntentSearchProduct      Intent = "search_product"
	IntentGetProductDetails  Intent = "get_product_details"
	IntentCreateProduct      Intent = "create_product"
	IntentUpdateProduct      Intent = "update_product"
	IntentSearchSales        Intent = "search_sales"
	IntentCreateSale         Intent = "create_sale"
	IntentUpdateSale         Intent = "update_sale"
	IntentGetAnalytics       Intent = "get_analytics"
	IntentGetRecommendations Intent = "get_recommendations"
	IntentVendorQuery        Intent = "vendor_query"
	IntentConfirmAction      Intent = "confirm_action"
	IntentCancelAction       Intent = "cancel_action"
	IntentGeneralChat        Intent = "general_chat"
)

// Intents lists every known intent. The router treats anything outside this
// set as general chat.
var Intents = []Intent{
	IntentSearchProduct,
	IntentGetProductDetails,
	IntentCreateProduct,
	IntentUpdateProduct,
	IntentSearchSales,
	IntentCreateSale,
	IntentUpdateSale,
	IntentGetAnalytics,
	IntentGetRecommendations,
	IntentVendorQuery,
	IntentConfirmAction,
	IntentCancelAction,
	IntentGeneralChat,
}

func (i Intent) Known() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Entities holds the values the classifier extracts from a turn. Numeric
// fields are pointers so "absent" and "zero" stay distinguishable.
type Entities struct {
	ProductName string   `json:"product_name,omitempty"`
	ProductID   string   `json:"product_id,omitempty"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Description string   `json:"description,omitempty"`
	PriceMin    *float64 `json:"price_min,omitempty"`
	PriceMax    *float64 `json:"price_max,omitempty"`
	RatingMin   *float64 `json:"rating_min,omitempty"`
	CustomerID  string   `json:"customer_id,omitempty"`
	SaleID      string   `json:"sale_id,omitempty"`
	Status      string   `json:"status,omitempty"`
	Total       *float64 `json:"total,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	VendorID    string   `json:"vendor_id,omitempty"`
	VendorName  string   `json:"vendor_name,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// IntentResult is what the classifier adapter hands to validation and
// routing.
type IntentResult struct {
	Intent                Intent   `json:"intent"`
	Entities              Entities `json:"entities"`
	RequiresClarification bool     `json:"requires_clarification"`
	ClarificationNeeded   []string `json:"clarification_needed,omitempty"`
}

// Turn is the unit of processing: created fresh per call, never persisted.
type Turn struct {
	Input            string
	Intent           Intent
	Entities         Entities
	ValidationErrors []string
	Response         string
}
