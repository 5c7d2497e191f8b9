package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sandevgo/veractbot/internal/core"
)

// OpenAICompatible talks to any endpoint implementing the OpenAI chat
// completions API. Groq and Ollama are both thin presets over this.
type OpenAICompatible struct {
	baseProvider
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
}

type OpenAICompatibleConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g. "Authorization"
	AuthPrefix   string // e.g. "Bearer "
	ExtraHeaders map[string]string
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (o *OpenAICompatible) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: core.RoleSystem, Content: req.System})
	}
	messages = append(messages, chatMessage{Role: core.RoleUser, Content: req.User})

	payload := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"temperature": req.Temperature,
	}

	headers := map[string]string{"User-Agent": core.VeractUserAgent}
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	data, err := o.doRequest(ctx, http.MethodPost, "/chat/completions", payload, headers)
	if err != nil {
		return "", err
	}
	return parseChatResponse(data)
}

func parseChatResponse(data []byte) (string, error) {
	var result struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %s", string(data))
	}
	return result.Choices[0].Message.Content, nil
}
