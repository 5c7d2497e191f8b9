package llm

// NewOllama targets a local Ollama daemon through its OpenAI-compatible
// endpoint. The API key is optional and only sent when set.
func NewOllama(baseURL, apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    baseURL + "/v1",
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}
