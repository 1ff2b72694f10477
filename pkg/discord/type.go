package discord

import (
	"net/http"
	"time"

	"bank-api/pkg/log"
)

// Webhook identifies a Discord webhook.
type Webhook struct {
	ID    string
	Token string
}

// Config tunes delivery. Zero values fall back to defaults.
type Config struct {
	BaseURL    string
	Username   string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// WebhookPayload is the JSON body accepted by the Discord webhook endpoint.
type WebhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// Embed is a rich message block.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type discordImpl struct {
	l       log.Logger
	webhook Webhook
	cfg     Config
	client  *http.Client
}
