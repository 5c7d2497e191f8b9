package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/pkg/log"
)

const generalFallbackResponse = "I'm here to help! You can ask me to search for products, check sales, get analytics, or manage vendors. What would you like to do?"

const generalSystemPrompt = `You are a friendly retail assistant for a product and sales management system.
You help users search products, manage sales records, view analytics and look up vendors.
Keep responses short and conversational. Use the session context below to stay on topic.

Session context:
%s`

// General answers small talk and anything the classifier couldn't place. It is
// the only handler that talks to the model at chat temperature.
type General struct {
	llm         core.LLM
	temperature float64
	historySize int
}

func NewGeneral(llm core.LLM, temperature float64) *General {
	return &General{llm: llm, temperature: temperature, historySize: 6}
}

func (h *General) Handle(ctx context.Context, turn *core.Turn, mem core.Memory) (string, error) {
	// The current input is already the last appended message.
	var sb strings.Builder
	for _, m := range mem.Recent(h.historySize) {
		sb.WriteString(fmt.Sprintf("%s: %s\n", m.Role, m.Content))
	}

	resp, err := h.llm.Complete(ctx, core.CompletionRequest{
		System:      fmt.Sprintf(generalSystemPrompt, mem.ContextJSON()),
		User:        strings.TrimSpace(sb.String()),
		Temperature: h.temperature,
	})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("general chat completion failed, using canned reply")
		return generalFallbackResponse, nil
	}
	resp = strings.TrimSpace(resp)
	if resp == "" {
		return generalFallbackResponse, nil
	}
	return resp, nil
}
