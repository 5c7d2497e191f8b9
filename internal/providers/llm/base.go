package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/veractbot/pkg/retry"
)

type baseProvider struct {
	client  *http.Client
	retrier *retry.Retrier
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(baseURL, apiKey, model string) baseProvider {
	return baseProvider{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		retrier: retry.NewDefaultRetrier(),
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// doRequest posts a JSON body and retries transient failures. Non-retryable
// HTTP statuses come back as the final error so callers can fall back.
func (b *baseProvider) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	var data []byte
	err = b.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := b.client.Do(req)
		if err != nil {
			return fmt.Errorf("request: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
