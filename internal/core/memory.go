package core

// Context key names seeded into every session. Known keys are always
// present; unknown keys set by callers are kept as-is.
const (
	CtxLastProduct       = "last_product"
	CtxLastProductID     = "last_product_id"
	CtxLastFilters       = "last_filters"
	CtxLastSearchResults = "last_search_results"
	CtxCurrentTopic      = "current_topic"
	CtxUserPreferences   = "user_preferences"
	CtxSessionStart      = "session_start"
	CtxCustomerID        = "customer_id"
	CtxLastSale          = "last_sale"
	CtxConversationCount = "conversation_count"
)

// Memory is the per-conversation state the handlers and the classifier
// adapter work against.
type Memory interface {
	Append(role, text string)
	Recent(n int) []Message
	Get(key string) (any, bool)
	Set(key string, value any)
	ContextJSON() string

	StagePending(action PendingAction)
	Pending() (PendingAction, bool)
	ClearPending()

	Reset()
}
