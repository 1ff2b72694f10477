package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const minSecretKeyLength = 32

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig
	CORS   CORSConfig

	// Authentication & Security Configuration
	Security SecurityConfig
	Docs     DocsConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig selects how bearer tokens are verified.
// JWKSURL wins over SecretKey when both are set.
type SecurityConfig struct {
	JWKSURL   string
	Issuer    string
	Audience  string
	SecretKey string
	// ResourceURL is advertised in the protected resource metadata.
	ResourceURL string
}

// DocsConfig feeds the OAuth2 login of the Swagger UI.
type DocsConfig struct {
	AuthorizationURL string
	TokenURL         string
	ClientID         string
	Host             string
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load reads bank-api-config.yaml from ./config, . or /etc/bank-api/ and
// applies environment overrides such as SECURITY_JWKS_URL.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("bank-api-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/bank-api/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")

	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Mode = v.GetString("server.mode")
	cfg.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")

	cfg.Security.JWKSURL = v.GetString("security.jwks_url")
	cfg.Security.Issuer = v.GetString("security.issuer")
	cfg.Security.Audience = v.GetString("security.audience")
	cfg.Security.SecretKey = v.GetString("security.secret_key")
	cfg.Security.ResourceURL = v.GetString("security.resource_url")

	cfg.Docs.AuthorizationURL = v.GetString("docs.authorization_url")
	cfg.Docs.TokenURL = v.GetString("docs.token_url")
	cfg.Docs.ClientID = v.GetString("docs.client_id")
	cfg.Docs.Host = v.GetString("docs.host")

	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "production")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("docs.authorization_url", "http://localhost:8180/auth/realms/bank/protocol/openid-connect/auth")
	v.SetDefault("docs.token_url", "http://localhost:8180/auth/realms/bank/protocol/openid-connect/token")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server.port is required")
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug, release, test")
	}

	if cfg.Security.JWKSURL == "" && cfg.Security.SecretKey == "" {
		return fmt.Errorf("one of security.jwks_url or security.secret_key is required")
	}
	if cfg.Security.JWKSURL == "" && len(cfg.Security.SecretKey) < minSecretKeyLength {
		return fmt.Errorf("security.secret_key must be at least %d characters for security", minSecretKeyLength)
	}

	if cfg.Docs.AuthorizationURL == "" || cfg.Docs.TokenURL == "" {
		return fmt.Errorf("docs.authorization_url and docs.token_url are required")
	}

	return nil
}
