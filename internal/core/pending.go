package core

// ActionKind names a staged mutation awaiting user confirmation.
type ActionKind string

const (
	ActionCreateProduct ActionKind = "create_product"
	ActionUpdateProduct ActionKind = "update_product"
	ActionCreateSale    ActionKind = "create_sale"
	ActionUpdateSale    ActionKind = "update_sale"
)

// PendingAction is a fully validated mutation staged by a domain handler and
// consumed exactly once by the confirmation executor. Exactly one of the
// payload fields is set, selected by Kind.
type PendingAction struct {
	Kind    ActionKind `json:"kind"`
	Product *Product   `json:"product,omitempty"`
	Sale    *Sale      `json:"sale,omitempty"`

	// TargetID and Changes carry update deltas for the update_* kinds.
	TargetID string         `json:"target_id,omitempty"`
	Changes  map[string]any `json:"changes,omitempty"`
}
