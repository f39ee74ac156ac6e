package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole checks that the authenticated principal carries the given
// role claim. Runs after JWTAuth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("adminID"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
			c.Abort()
			return
		}

		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Papel ausente no token"})
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok || userRole != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permissões insuficientes"})
			c.Abort()
			return
		}

		c.Next()
	}
}
