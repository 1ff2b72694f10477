package main

import (
	"context"
	"fmt"

	"bank-api/config"
	"bank-api/internal/httpserver"
	"bank-api/internal/middleware"
	"bank-api/pkg/discord"
	"bank-api/pkg/log"
	"bank-api/pkg/scope"
)

// @title Bank API
// @description Sample banking API secured with OAuth2 bearer tokens.
// @version 1.0
// @BasePath /sample/api/v1
//
// @securityDefinitions.oauth2.accessCode bank_auth
// @authorizationUrl http://localhost:8180/auth
// @tokenUrl http://localhost:8180/token
// @scope.accounts:list Right to list accounts
// @scope.accounts:details Right to consult accounts details
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize token verifier
	verifier, err := newVerifier(ctx, cfg.Security)
	if err != nil {
		logger.Error(ctx, "Failed to initialize token verifier: ", err)
		return
	}

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		}, discord.Config{})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORS.AllowedOrigins
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		Mode:            cfg.Server.Mode,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,

		// Authentication & Security Configuration
		Verifier: verifier,
		Security: httpserver.SecurityConfig{
			Issuer:      cfg.Security.Issuer,
			JWKSURL:     cfg.Security.JWKSURL,
			ResourceURL: cfg.Security.ResourceURL,
		},
		CORS: corsCfg,
		Docs: httpserver.DocsConfig{
			AuthorizationURL: cfg.Docs.AuthorizationURL,
			TokenURL:         cfg.Docs.TokenURL,
			ClientID:         cfg.Docs.ClientID,
			Host:             cfg.Docs.Host,
		},

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// newVerifier prefers the identity provider's JWKS and falls back to a shared secret.
func newVerifier(ctx context.Context, cfg config.SecurityConfig) (scope.Verifier, error) {
	if cfg.JWKSURL != "" {
		return scope.NewJWKSVerifier(ctx, scope.JWKSConfig{
			URL:      cfg.JWKSURL,
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
		})
	}
	return scope.NewManager(cfg.SecretKey, cfg.Issuer, cfg.Audience)
}
