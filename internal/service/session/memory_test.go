package session

import (
	"encoding/json"
	"testing"

	"github.com/sandevgo/veractbot/internal/core"
)

func TestMemory_Defaults(t *testing.T) {
	m := New()

	for _, key := range []string{
		core.CtxLastProduct,
		core.CtxLastProductID,
		core.CtxLastFilters,
		core.CtxLastSearchResults,
		core.CtxCurrentTopic,
		core.CtxUserPreferences,
		core.CtxSessionStart,
		core.CtxCustomerID,
		core.CtxLastSale,
		core.CtxConversationCount,
	} {
		if _, ok := m.Get(key); !ok {
			t.Errorf("default context missing key %q", key)
		}
	}

	if n, _ := m.Get(core.CtxConversationCount); n != 0 {
		t.Errorf("expected conversation_count 0, got %v", n)
	}
}

func TestMemory_AppendCountsTurns(t *testing.T) {
	m := New()

	m.Append(core.RoleUser, "hi")
	m.Append(core.RoleAssistant, "hello")

	if n, _ := m.Get(core.CtxConversationCount); n != 2 {
		t.Errorf("expected conversation_count 2, got %v", n)
	}

	recent := m.Recent(1)
	if len(recent) != 1 || recent[0].Content != "hello" {
		t.Errorf("Recent(1) = %+v, want the last message", recent)
	}
	if all := m.Recent(0); len(all) != 2 {
		t.Errorf("Recent(0) should return everything, got %d messages", len(all))
	}
}

func TestMemory_PendingSupersedes(t *testing.T) {
	m := New()

	if _, ok := m.Pending(); ok {
		t.Fatal("fresh memory must have no pending action")
	}

	m.StagePending(core.PendingAction{Kind: core.ActionCreateProduct, Product: &core.Product{ID: "prod_a"}})
	m.StagePending(core.PendingAction{Kind: core.ActionCreateSale, Sale: &core.Sale{ID: "sale_b"}})

	pending, ok := m.Pending()
	if !ok {
		t.Fatal("expected a pending action")
	}
	if pending.Kind != core.ActionCreateSale {
		t.Errorf("later staging must supersede, got kind %q", pending.Kind)
	}

	m.ClearPending()
	if _, ok := m.Pending(); ok {
		t.Error("pending action survived ClearPending")
	}
}

func TestMemory_Reset(t *testing.T) {
	m := New()
	m.Append(core.RoleUser, "remember me")
	m.Set(core.CtxLastProductID, "prod_001")
	m.StagePending(core.PendingAction{Kind: core.ActionUpdateProduct, TargetID: "prod_001"})

	m.Reset()

	if len(m.Recent(0)) != 0 {
		t.Error("messages survived reset")
	}
	if id, _ := m.Get(core.CtxLastProductID); id != nil {
		t.Errorf("context survived reset: last_product_id = %v", id)
	}
	if _, ok := m.Pending(); ok {
		t.Error("pending action survived reset")
	}
}

func TestMemory_ContextJSON(t *testing.T) {
	m := New()
	m.Set(core.CtxCurrentTopic, "electronics")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(m.ContextJSON()), &parsed); err != nil {
		t.Fatalf("ContextJSON is not valid JSON: %v", err)
	}
	if parsed[core.CtxCurrentTopic] != "electronics" {
		t.Errorf("expected current_topic in serialized context, got %v", parsed[core.CtxCurrentTopic])
	}
}
