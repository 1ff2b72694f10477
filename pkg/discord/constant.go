package discord

import "time"

const (
	// defaultBaseURL is the Discord webhook API root; {id}/{token} are appended.
	defaultBaseURL = "https://discord.com/api/webhooks"

	// MaxEmbedDescriptionLength is Discord's hard limit for an embed description.
	MaxEmbedDescriptionLength = 4096

	defaultUsername   = "bank-api"
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond

	colorError = 0xE74C3C
)
