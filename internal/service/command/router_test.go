package command

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/engine"
	"github.com/sandevgo/veractbot/internal/service/handler"
	"github.com/sandevgo/veractbot/internal/service/nlu"
)

type silentLLM struct{}

func (silentLLM) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	return `{"intent": "general_chat"}`, nil
}

func newTestManager() *engine.Manager {
	eng := engine.New(nlu.NewExtractor(silentLLM{}, 0.1), engine.Handlers{
		General: handler.NewGeneral(silentLLM{}, 0.7),
	})
	return engine.NewManager(eng)
}

func TestRouter_PassesThroughPlainText(t *testing.T) {
	r := New(NewCommands(newTestManager()))

	out, handled := r.Execute(context.Background(), "s1", "hello there")
	if handled {
		t.Fatalf("plain text must not be handled as a command, got %q", out)
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := New(NewCommands(newTestManager()))

	out, handled := r.Execute(context.Background(), "s1", "/frobnicate")
	if !handled {
		t.Fatal("slash input must always be handled")
	}
	if out != "Unknown command: /frobnicate" {
		t.Errorf("unexpected response: %q", out)
	}
}

func TestRouter_HelpListsCapabilities(t *testing.T) {
	r := New(NewCommands(newTestManager()))

	out, handled := r.Execute(context.Background(), "s1", "/help")
	if !handled {
		t.Fatal("expected /help to be handled")
	}
	for _, want := range []string{"/reset", "/pending", "Analytics"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRouter_PendingReflectsSession(t *testing.T) {
	sessions := newTestManager()
	r := New(NewCommands(sessions))
	ctx := context.Background()

	out, _ := r.Execute(ctx, "s1", "/pending")
	if !strings.Contains(out, "nothing staged") {
		t.Fatalf("expected empty pending report, got %q", out)
	}

	sessions.Session("s1").Memory().StagePending(core.PendingAction{
		Kind:    core.ActionCreateProduct,
		Product: &core.Product{ID: "prod_001", Name: "Lamp"},
	})

	out, _ = r.Execute(ctx, "s1", "/pending")
	if !strings.Contains(out, string(core.ActionCreateProduct)) || !strings.Contains(out, "Lamp") {
		t.Errorf("expected staged action report, got %q", out)
	}
}

func TestRouter_ResetClearsSession(t *testing.T) {
	sessions := newTestManager()
	r := New(NewCommands(sessions))
	ctx := context.Background()

	mem := sessions.Session("s1").Memory()
	mem.StagePending(core.PendingAction{Kind: core.ActionUpdateSale, TargetID: "sale_001"})

	out, handled := r.Execute(ctx, "s1", "/reset")
	if !handled || !strings.Contains(out, "reset") {
		t.Fatalf("unexpected reset response: %q (handled=%v)", out, handled)
	}
	if _, ok := sessions.Session("s1").Memory().Pending(); ok {
		t.Error("pending action survived /reset")
	}
}
