package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/session"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

const SessionKey = "session"

// Auth is the route guard: unauthenticated requests are turned away with
// the login redirect, authenticated ones proceed with the session and the
// upstream bearer token in the request context.
func Auth(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthRedirect(c, c.Request.URL.Path)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.AuthRedirect(c, c.Request.URL.Path)
			c.Abort()
			return
		}

		sess, err := manager.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			response.AuthRedirect(c, c.Request.URL.Path)
			c.Abort()
			return
		}

		ctx := session.WithSessionID(c.Request.Context(), sess.ID)
		ctx = upstream.WithToken(ctx, sess.UpstreamToken)
		c.Request = c.Request.WithContext(ctx)

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session the route guard resolved.
func GetSession(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}
