package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek API client.
type IDeepSeek interface {
	CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	Model() string
}

// New creates a new DeepSeek client with the given configuration.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &deepseekImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
