package httpserver

import (
	"bank-api/pkg/log"
	"bank-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// healthCheck handles health check requests. Served at the root, outside the
// documented API base path.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"service": log.ServiceName,
	})
}

// readyCheck handles readiness check requests
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	verifier := "hmac"
	if srv.security.JWKSURL != "" {
		verifier = "jwks"
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  serviceVersion,
		"service":  log.ServiceName,
		"verifier": verifier,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": log.ServiceName,
	})
}
