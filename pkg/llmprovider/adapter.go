package llmprovider

import (
	"context"
	"fmt"

	"lunchbox-ai/pkg/deepseek"
	"lunchbox-ai/pkg/groq"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.CreateChatCompletion(ctx, &groq.ChatRequest{
		Messages:    buildGroqMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "groq", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: "groq", Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "groq",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func buildGroqMessages(req *Request) []groq.Message {
	var msgs []groq.Message
	if req.SystemPrompt != "" {
		msgs = append(msgs, groq.Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, groq.Message{Role: "user", Content: req.UserPrompt})
	return msgs
}

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.CreateChatCompletion(ctx, &deepseek.ChatRequest{
		Messages:    buildDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: "deepseek", Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "deepseek",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func buildDeepSeekMessages(req *Request) []deepseek.Message {
	var msgs []deepseek.Message
	if req.SystemPrompt != "" {
		msgs = append(msgs, deepseek.Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, deepseek.Message{Role: "user", Content: req.UserPrompt})
	return msgs
}
