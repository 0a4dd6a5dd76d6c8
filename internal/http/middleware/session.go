// Session cookie authentication.
//
// Session() resolves the opaque session cookie to a user id and stores it in
// the Gin context under "userID". It never aborts: anonymous requests pass
// through with no user set, and each handler decides whether authentication
// is required. Downstream middleware (logging, rate limiting) also reads the
// resolved user.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// SessionResolver maps an opaque session token to a user id.
//
// Implementations return ("", nil) for unknown or expired tokens; only
// infrastructure failures surface as errors.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (string, error)
}

// Session returns a middleware that authenticates requests via the named
// session cookie. A missing cookie, an unknown token, or a resolver error all
// leave the request anonymous; resolver errors are logged and otherwise
// ignored so a transient store failure degrades to 401s instead of 500s.
func Session(cookieName string, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		uid, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			LoggerFrom(c).Warn().Err(err).Msg("session resolve failed")
			c.Next()
			return
		}
		if uid != "" {
			c.Set("userID", uid)
		}
		c.Next()
	}
}
