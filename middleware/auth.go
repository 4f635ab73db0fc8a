package middleware

import (
	"net/http"
	"strings"

	"blogapi/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers once a token checks out.
const (
	CtxUserID  = "userId"
	CtxEmailID = "emailId"
)

// JWTAuthMiddleware extracts a Bearer token from the Authorization header,
// verifies it against the given secret and attaches the resolved identity to
// the request context. Missing, malformed, invalid and expired tokens all
// answer 401; the caller is not told which case it was.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No token provided",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No token provided",
			})
			c.Abort()
			return
		}

		claims, err := auth.VerifyToken(parts[1], secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmailID, claims.EmailID)

		c.Next()
	}
}
