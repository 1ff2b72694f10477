package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	// AllowedOrigins accepts exact origins, "*" or wildcard subdomains like "*.example.com".
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// DefaultCORSConfig allows the Swagger UI and browser clients to call the read-only API.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"Origin",
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
		},
		ExposedHeaders: []string{"Content-Length", "WWW-Authenticate"},
		MaxAge:         86400,
	}
}

func CORS(cfg CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	exposed := strings.Join(cfg.ExposedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Vary", "Origin")
			if allowOrigin, ok := matchOrigin(origin, cfg.AllowedOrigins, cfg.AllowCredentials); ok {
				c.Header("Access-Control-Allow-Origin", allowOrigin)
			}
		}

		if exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		// preflight
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}

// matchOrigin returns the Access-Control-Allow-Origin value for origin.
// "*" is echoed as the literal origin when credentials are allowed.
func matchOrigin(origin string, allowed []string, credentials bool) (string, bool) {
	for _, a := range allowed {
		switch {
		case a == "*":
			if credentials {
				return origin, true
			}
			return "*", true
		case a == origin:
			return origin, true
		case strings.HasPrefix(a, "*."):
			if strings.HasSuffix(origin, a[1:]) {
				return origin, true
			}
		}
	}
	return "", false
}
