package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/session"
)

// RequireSession rejects requests that carry no active session. Routes
// behind it can rely on the resolver returning a real user rather than
// the anonymous fallbacks.
func RequireSession(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolver.Current(c.Request.Context()) == nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "No active session")
			c.Abort()
			return
		}
		c.Next()
	}
}
