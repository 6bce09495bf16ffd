package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/semagency/orderbot/internal/pkg/auth"
)

// TokenRequired guards the ops endpoints with a single bearer token checked
// against its stored hash. An empty hash keeps the endpoints locked.
func TokenRequired(verifier pkgAuth.TokenVerifier, tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenHash == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err := verifier.Compare(tokenHash, token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
