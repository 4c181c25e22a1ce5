package discord

import "context"

// IDiscord defines the interface for the Discord webhook client.
type IDiscord interface {
	// Send posts a message to the configured webhook.
	Send(ctx context.Context, msg WebhookMessage) error
}

// New creates a new Discord webhook client with the given configuration.
func New(cfg Config) (IDiscord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &discordImpl{
		webhookURL: cfg.WebhookURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
