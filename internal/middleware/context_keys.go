package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private key type for request-context values. Using a
// custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	displayCtxKey = contextKey("displayContext")
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}
