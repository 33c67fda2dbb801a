package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/config"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/services"
)

// AuthMiddleware validates the bearer token and, when a session id is
// embedded in it, checks the session is still live. The email lands in
// the context under "email".
func AuthMiddleware(sessions *repository.Sessions, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, sessionID, err := services.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if sessionID != "" && sessions != nil {
			session, ok := sessions.Get(sessionID)
			if !ok || !services.SessionValid(session, time.Now(), cfg.InactivityTimeout) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
				c.Abort()
				return
			}
			sessions.Touch(c.Request.Context(), sessionID, time.Now())
			c.Set("session_id", sessionID)
		}

		c.Set("email", email)
		c.Next()
	}
}
