package port

import "context"

// AIProvider abstracts the AI/LLM backend for text generation.
// Implementations can target Ollama, OpenAI, or any compatible API.
type AIProvider interface {
	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Chat sends a prompt and returns the complete model response.
	Chat(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
