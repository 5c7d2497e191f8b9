package nlu

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/pkg/log"
)

var (
	confirmTokens = []string{"yes", "confirm", "ok", "proceed", "sure"}
	cancelTokens  = []string{"no", "cancel", "abort"}
)

// Extractor wraps the external classifier with local confirm/cancel
// short-circuits and the deterministic keyword fallback.
type Extractor struct {
	llm         core.LLM
	temperature float64
}

func NewExtractor(llm core.LLM, temperature float64) *Extractor {
	return &Extractor{llm: llm, temperature: temperature}
}

// Extract classifies one turn. Confirmation and cancellation tokens are
// resolved locally before any network call: a "yes" with a staged action must
// not depend on classifier availability. Every classifier failure degrades to
// the keyword fallback, never to an error.
func (e *Extractor) Extract(ctx context.Context, text string, mem core.Memory) core.IntentResult {
	lower := strings.ToLower(text)

	if containsAny(lower, confirmTokens) {
		if _, ok := mem.Pending(); ok {
			return core.IntentResult{Intent: core.IntentConfirmAction}
		}
	}
	if containsAny(lower, cancelTokens) {
		return core.IntentResult{Intent: core.IntentCancelAction}
	}

	logger := log.FromCtx(ctx)

	raw, err := e.llm.Complete(ctx, core.CompletionRequest{
		System:      classifierPrompt(mem.ContextJSON()),
		User:        text,
		Temperature: e.temperature,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("classifier call failed, using keyword fallback")
		return Fallback(text)
	}

	result, err := parseClassifierResponse(raw)
	if err != nil {
		logger.Warn().Err(err).Str("response", raw).Msg("classifier response unparsable, using keyword fallback")
		return Fallback(text)
	}
	return result
}

func parseClassifierResponse(raw string) (core.IntentResult, error) {
	cleaned := stripCodeFence(raw)

	var wire struct {
		Intent                string        `json:"intent"`
		Entities              core.Entities `json:"entities"`
		RequiresClarification bool          `json:"requires_clarification"`
		ClarificationNeeded   []string      `json:"clarification_needed"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return core.IntentResult{}, err
	}

	intent := core.Intent(wire.Intent)
	if intent == "" {
		intent = core.IntentGeneralChat
	}

	return core.IntentResult{
		Intent:                intent,
		Entities:              wire.Entities,
		RequiresClarification: wire.RequiresClarification,
		ClarificationNeeded:   wire.ClarificationNeeded,
	}, nil
}

// stripCodeFence removes a markdown code fence wrapper, which some models
// insist on despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
