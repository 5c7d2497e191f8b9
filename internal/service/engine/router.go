package engine

import "github.com/sandevgo/veractbot/internal/core"

// HandlerName identifies a dispatch destination.
type HandlerName string

const (
	HandlerCatalog         HandlerName = "catalog"
	HandlerSales           HandlerName = "sales"
	HandlerAnalytics       HandlerName = "analytics"
	HandlerVendor          HandlerName = "vendor"
	HandlerConfirmation    HandlerName = "confirmation_executor"
	HandlerCancellation    HandlerName = "cancellation"
	HandlerValidationError HandlerName = "validation_error"
	HandlerGeneral         HandlerName = "general"
)

// Route maps a classified turn to its handler. Validation errors win over
// any intent. The mapping is total: unknown intents land on the general
// handler, guarding against classifier drift.
func Route(intent core.Intent, hasValidationErrors bool) HandlerName {
	if hasValidationErrors {
		return HandlerValidationError
	}

	switch intent {
	case core.IntentSearchProduct, core.IntentGetProductDetails, core.IntentCreateProduct, core.IntentUpdateProduct:
		return HandlerCatalog
	case core.IntentSearchSales, core.IntentCreateSale, core.IntentUpdateSale:
		return HandlerSales
	case core.IntentGetAnalytics, core.IntentGetRecommendations:
		return HandlerAnalytics
	case core.IntentVendorQuery:
		return HandlerVendor
	case core.IntentConfirmAction:
		return HandlerConfirmation
	case core.IntentCancelAction:
		return HandlerCancellation
	default:
		return HandlerGeneral
	}
}
