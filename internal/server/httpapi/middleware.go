package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moodflow/internal/server/models"
)

// userKey is the gin context key under which authRequired stores the
// resolved user.
const userKey = "user"

// RequestIDHeader carries the per-request correlation ID, generated here
// unless the caller already sent one.
const RequestIDHeader = "X-Request-ID"

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// authRequired resolves the session cookie to a user or aborts with 401.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {

		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := s.users.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// currentUserFromContext returns the user stored by authRequired.
func currentUserFromContext(c *gin.Context) *models.User {
	return c.MustGet(userKey).(*models.User)
}
