package discord

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Discord webhook client configuration.
type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("discord: WebhookURL is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// WebhookMessage is the payload posted to a Discord webhook.
type WebhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed is a Discord rich embed.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// EmbedField is a single embed field.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter is the embed footer line.
type EmbedFooter struct {
	Text string `json:"text"`
}

// NewTimestamp formats t for the embed timestamp field.
func NewTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type discordImpl struct {
	webhookURL string
	httpClient *http.Client
}
