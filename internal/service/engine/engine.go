package engine

import (
	"context"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/nlu"
	"github.com/sandevgo/veractbot/pkg/log"
)

const (
	cancelResponse = "No problem! I've cancelled that action. What else can I help you with?"
	errorResponse  = "I encountered an error processing that. Could you try again?"
)

// Handlers bundles the dispatch destinations the engine needs.
type Handlers struct {
	Catalog      core.Handler
	Sales        core.Handler
	Analytics    core.Handler
	Vendor       core.Handler
	General      core.Handler
	Confirmation core.Handler
}

// Engine sequences one turn: classify, validate, route, handle. It is
// stateless and shared by every session.
type Engine struct {
	extractor *nlu.Extractor
	handlers  map[HandlerName]core.Handler
}

func New(extractor *nlu.Extractor, h Handlers) *Engine {
	return &Engine{
		extractor: extractor,
		handlers: map[HandlerName]core.Handler{
			HandlerCatalog:      h.Catalog,
			HandlerSales:        h.Sales,
			HandlerAnalytics:    h.Analytics,
			HandlerVendor:       h.Vendor,
			HandlerGeneral:      h.General,
			HandlerConfirmation: h.Confirmation,
		},
	}
}

// runTurn executes the turn pipeline against a session memory. Handler
// failures of any kind, panics included, become the generic retry response:
// one bad turn must never end a conversation.
func (e *Engine) runTurn(ctx context.Context, text string, mem core.Memory) (response string) {
	logger := log.FromCtx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Any("panic", r).Msg("handler panicked")
			response = errorResponse
		}
	}()

	res := e.extractor.Extract(ctx, text, mem)

	turn := &core.Turn{
		Input:            text,
		Intent:           res.Intent,
		Entities:         res.Entities,
		ValidationErrors: Validate(res),
	}

	dest := Route(turn.Intent, len(turn.ValidationErrors) > 0)
	logger.Debug().
		Str("intent", string(turn.Intent)).
		Str("handler", string(dest)).
		Int("validation_errors", len(turn.ValidationErrors)).
		Msg("routing turn")

	switch dest {
	case HandlerCancellation:
		mem.ClearPending()
		return cancelResponse
	case HandlerValidationError:
		return renderValidationErrors(turn.ValidationErrors)
	}

	resp, err := e.handlers[dest].Handle(ctx, turn, mem)
	if err != nil {
		logger.Error().Err(err).Str("handler", string(dest)).Msg("handler failed")
		return errorResponse
	}
	return resp
}

func renderValidationErrors(errs []string) string {
	var sb strings.Builder
	sb.WriteString("I noticed some issues with your request:\n\n")
	for _, e := range errs {
		sb.WriteString("• " + e + "\n")
	}
	sb.WriteString("\nCould you please provide the correct information?")
	return sb.String()
}
