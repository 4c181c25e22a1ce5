package groq

import "context"

// IGroq defines the interface for the Groq API client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// CreateChatCompletion sends a chat-completions request to the Groq API.
	CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Groq client with the given configuration.
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &groqImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
