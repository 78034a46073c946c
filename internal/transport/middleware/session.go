package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grabshow/storefront/internal/service"
	"github.com/grabshow/storefront/internal/session"
)

const (
	SessionKey  = "session"
	tokenHeader = "X-Session-Token"
	tokenCookie = "session_token"
)

// Session restores the caller's session from the token carried in the
// X-Session-Token header or the session_token cookie and aborts with
// 401 when neither resolves.
func Session(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(tokenHeader)
		if token == "" {
			if cookie, err := c.Cookie(tokenCookie); err == nil {
				token = cookie
			}
		}

		sess, err := auth.Restore(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// SessionFromContext pulls the restored session out of the gin
// context.
func SessionFromContext(c *gin.Context) *session.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
