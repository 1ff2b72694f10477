package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bank-api/pkg/log"
)

// IDiscord reports unexpected failures to a Discord channel.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// New creates a Discord reporter. cfg may be the zero value.
func New(l log.Logger, webhook Webhook, cfg Config) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Username == "" {
		cfg.Username = defaultUsername
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	} else if cfg.RetryCount == 0 {
		cfg.RetryCount = defaultRetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		cfg:     cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}
