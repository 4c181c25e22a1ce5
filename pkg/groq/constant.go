package groq

import "time"

const (
	// DefaultModel is the default Groq chat model.
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultBaseURL is the OpenAI-compatible Groq API endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)
