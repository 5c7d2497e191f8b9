package engine

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/handler"
	"github.com/sandevgo/veractbot/internal/service/nlu"
	"github.com/sandevgo/veractbot/internal/storage/jsonfile"
)

// scriptedLLM replays canned classifier responses in order.
type scriptedLLM struct {
	responses []string
	err       error
}

func (s *scriptedLLM) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return `{"intent": "general_chat"}`, nil
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func newTestEngine(t *testing.T, llm core.LLM) (*Engine, core.CatalogStore, core.SalesStore) {
	t.Helper()

	dir := t.TempDir()
	catalog := jsonfile.NewCatalog(filepath.Join(dir, "products.json"))
	sales := jsonfile.NewSales(filepath.Join(dir, "sales.json"))
	vendors := jsonfile.NewVendors(filepath.Join(dir, "vendors.json"))
	cfg := &config.AppConfig{SearchResultLimit: 10, RecommendationLimit: 5}

	eng := New(nlu.NewExtractor(llm, 0.1), Handlers{
		Catalog:      handler.NewCatalog(catalog, cfg),
		Sales:        handler.NewSales(sales, cfg),
		Analytics:    handler.NewAnalytics(sales, catalog, cfg),
		Vendor:       handler.NewVendor(vendors),
		General:      handler.NewGeneral(llm, 0.7),
		Confirmation: handler.NewConfirmation(catalog, sales),
	})
	return eng, catalog, sales
}

func TestSession_CreateProductConfirmFlow(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "create_product", "entities": {"product_id": "prod_100", "product_name": "Desk Lamp", "category": "Home"}}`,
	}}
	eng, catalog, _ := newTestEngine(t, llm)
	sess := eng.NewSession()
	ctx := context.Background()

	resp := sess.Process(ctx, "add a desk lamp to the catalog")
	if !strings.Contains(resp, "(Yes/No)") {
		t.Fatalf("expected confirmation prompt, got %q", resp)
	}
	if _, ok := sess.Memory().Pending(); !ok {
		t.Fatal("expected a staged action after create request")
	}

	resp = sess.Process(ctx, "yes")
	if !strings.Contains(resp, "created successfully") {
		t.Fatalf("expected creation confirmation, got %q", resp)
	}
	if _, ok := sess.Memory().Pending(); ok {
		t.Error("pending action survived confirmation")
	}
	if _, ok := catalog.Get(ctx, "prod_100"); !ok {
		t.Error("confirmed product was not persisted")
	}
}

func TestSession_CreateSaleConfirmFlow(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "create_sale", "entities": {"customer_id": "cust_001", "total": 2500}}`,
	}}
	eng, _, sales := newTestEngine(t, llm)
	sess := eng.NewSession()
	ctx := context.Background()

	resp := sess.Process(ctx, "record a sale of 2500 for cust_001")
	if !strings.Contains(resp, "(Yes/No)") {
		t.Fatalf("expected confirmation prompt, got %q", resp)
	}

	resp = sess.Process(ctx, "yes")
	if !strings.Contains(resp, "recorded successfully") {
		t.Fatalf("expected sale confirmation, got %q", resp)
	}
	for _, want := range []string{"cust_001", "₹2,500.00", "PENDING"} {
		if !strings.Contains(resp, want) {
			t.Errorf("confirmation missing %q, got %q", want, resp)
		}
	}
	if got := sales.Search(ctx, core.SaleFilter{CustomerID: "cust_001"}); len(got) != 1 {
		t.Errorf("expected one persisted sale, got %d", len(got))
	}
}

func TestSession_SearchSetsConversationReferent(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "search_product", "entities": {"product_name": "mixer"}}`,
	}}
	eng, catalog, _ := newTestEngine(t, llm)
	ctx := context.Background()
	catalog.Create(ctx, core.Product{ID: "prod_050", Name: "Stand Mixer", Category: "Home", Rating: 4.4})

	sess := eng.NewSession()
	resp := sess.Process(ctx, "do you have a mixer?")
	if !strings.Contains(resp, "Stand Mixer") {
		t.Fatalf("expected the product in the response, got %q", resp)
	}
	if id, _ := sess.Memory().Get(core.CtxLastProductID); id != "prod_050" {
		t.Errorf("expected last_product_id prod_050, got %v", id)
	}
}

func TestSession_CancelDiscardsPending(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "create_product", "entities": {"product_id": "prod_200", "product_name": "Racket", "category": "Sports"}}`,
	}}
	eng, catalog, _ := newTestEngine(t, llm)
	sess := eng.NewSession()
	ctx := context.Background()

	sess.Process(ctx, "add a racket")
	resp := sess.Process(ctx, "no")

	if !strings.Contains(resp, "cancelled") {
		t.Fatalf("expected cancellation response, got %q", resp)
	}
	if _, ok := sess.Memory().Pending(); ok {
		t.Error("pending action survived cancellation")
	}
	if _, ok := catalog.Get(ctx, "prod_200"); ok {
		t.Error("cancelled product was persisted anyway")
	}
}

func TestSession_ConfirmWithNothingPending(t *testing.T) {
	llm := &scriptedLLM{responses: []string{`{"intent": "confirm_action"}`}}
	eng, _, _ := newTestEngine(t, llm)
	sess := eng.NewSession()

	resp := sess.Process(context.Background(), "yes do it")
	if !strings.Contains(resp, "nothing pending") {
		t.Errorf("expected nothing-pending response, got %q", resp)
	}
}

func TestSession_ValidationErrorsBlockHandlers(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "search_product", "entities": {"category": "Gadgets"}}`,
	}}
	eng, _, _ := newTestEngine(t, llm)
	sess := eng.NewSession()

	resp := sess.Process(context.Background(), "show me gadgets")
	if !strings.Contains(resp, "I noticed some issues with your request") {
		t.Fatalf("expected validation response, got %q", resp)
	}
	if !strings.Contains(resp, "Invalid category") {
		t.Errorf("expected category error in response, got %q", resp)
	}
}

func TestSession_ClassifierOutageDegradesToFallback(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("service unavailable")}
	eng, _, _ := newTestEngine(t, llm)
	sess := eng.NewSession()

	// Keyword fallback still routes the turn; the empty store answers politely.
	resp := sess.Process(context.Background(), "find me a product")
	if !strings.Contains(resp, "couldn't find any products") {
		t.Errorf("expected empty search response, got %q", resp)
	}
}

func TestSession_HandlerPanicBecomesRetryResponse(t *testing.T) {
	llm := &scriptedLLM{responses: []string{`{"intent": "vendor_query"}`}}
	eng, _, _ := newTestEngine(t, llm)
	// Break the vendor destination on purpose.
	eng.handlers[HandlerVendor] = nil
	sess := eng.NewSession()

	resp := sess.Process(context.Background(), "list vendors")
	if resp != errorResponse {
		t.Errorf("expected generic retry response, got %q", resp)
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"intent": "create_product", "entities": {"product_id": "prod_300", "product_name": "Kettle", "category": "Home"}}`,
	}}
	eng, _, _ := newTestEngine(t, llm)
	mgr := NewManager(eng)
	ctx := context.Background()

	if mgr.Session("a") != mgr.Session("a") {
		t.Fatal("same key must return the same session")
	}
	if mgr.Session("a") == mgr.Session("b") {
		t.Fatal("different keys must return different sessions")
	}

	mgr.Session("a").Process(ctx, "add a kettle")
	if _, ok := mgr.Session("a").Memory().Pending(); !ok {
		t.Fatal("expected staged action in session a")
	}
	if _, ok := mgr.Session("b").Memory().Pending(); ok {
		t.Error("staged action leaked into session b")
	}

	mgr.Reset("a")
	if _, ok := mgr.Session("a").Memory().Pending(); ok {
		t.Error("staged action survived manager reset")
	}
}
