package nlu

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/session"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestExtract_ClassifierResponse(t *testing.T) {
	llm := &stubLLM{response: `{"intent": "search_product", "entities": {"category": "Electronics", "rating_min": 4}}`}
	e := NewExtractor(llm, 0.1)

	got := e.Extract(context.Background(), "show me good electronics", session.New())

	if got.Intent != core.IntentSearchProduct {
		t.Fatalf("expected search_product, got %q", got.Intent)
	}
	if got.Entities.Category != "Electronics" {
		t.Errorf("expected category Electronics, got %q", got.Entities.Category)
	}
	if got.Entities.RatingMin == nil || *got.Entities.RatingMin != 4 {
		t.Errorf("expected rating_min 4, got %v", got.Entities.RatingMin)
	}
}

func TestExtract_StripsCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"json fence", "```json\n{\"intent\": \"get_analytics\"}\n```"},
		{"bare fence", "```\n{\"intent\": \"get_analytics\"}\n```"},
		{"surrounding whitespace", "  {\"intent\": \"get_analytics\"}  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&stubLLM{response: tt.response}, 0.1)
			got := e.Extract(context.Background(), "numbers please", session.New())
			if got.Intent != core.IntentGetAnalytics {
				t.Errorf("expected get_analytics, got %q", got.Intent)
			}
		})
	}
}

func TestExtract_ConfirmRequiresPending(t *testing.T) {
	llm := &stubLLM{response: `{"intent": "general_chat"}`}
	e := NewExtractor(llm, 0.1)

	// Without a staged action "yes" goes to the classifier.
	got := e.Extract(context.Background(), "yes", session.New())
	if got.Intent != core.IntentGeneralChat {
		t.Fatalf("expected general_chat, got %q", got.Intent)
	}
	if llm.calls != 1 {
		t.Fatalf("expected classifier call, got %d", llm.calls)
	}

	// With a staged action "yes" resolves locally.
	mem := session.New()
	mem.StagePending(core.PendingAction{Kind: core.ActionCreateProduct, Product: &core.Product{ID: "prod_x"}})
	got = e.Extract(context.Background(), "yes, proceed", mem)
	if got.Intent != core.IntentConfirmAction {
		t.Fatalf("expected confirm_action, got %q", got.Intent)
	}
	if llm.calls != 1 {
		t.Errorf("confirmation must not call the classifier, calls = %d", llm.calls)
	}
}

func TestExtract_CancelShortCircuit(t *testing.T) {
	llm := &stubLLM{response: `{"intent": "general_chat"}`}
	e := NewExtractor(llm, 0.1)

	got := e.Extract(context.Background(), "no, cancel that", session.New())
	if got.Intent != core.IntentCancelAction {
		t.Fatalf("expected cancel_action, got %q", got.Intent)
	}
	if llm.calls != 0 {
		t.Errorf("cancellation must not call the classifier, calls = %d", llm.calls)
	}
}

func TestExtract_FallbackOnError(t *testing.T) {
	e := NewExtractor(&stubLLM{err: errors.New("boom")}, 0.1)

	got := e.Extract(context.Background(), "find me a product", session.New())
	if got.Intent != core.IntentSearchProduct {
		t.Errorf("expected keyword fallback search_product, got %q", got.Intent)
	}
}

func TestExtract_FallbackOnGarbage(t *testing.T) {
	e := NewExtractor(&stubLLM{response: "I think the user wants a summary"}, 0.1)

	got := e.Extract(context.Background(), "give me the stats", session.New())
	if got.Intent != core.IntentGetAnalytics {
		t.Errorf("expected keyword fallback get_analytics, got %q", got.Intent)
	}
}

func TestParseClassifierResponse_EmptyIntent(t *testing.T) {
	got, err := parseClassifierResponse(`{"entities": {}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != core.IntentGeneralChat {
		t.Errorf("empty intent should default to general_chat, got %q", got.Intent)
	}
}
