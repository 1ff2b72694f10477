package middleware

import (
	"bank-api/pkg/discord"
	"bank-api/pkg/log"
	"bank-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and reports it to Discord when configured.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, d)
				c.Abort()
			}
		}()
		c.Next()
	}
}
