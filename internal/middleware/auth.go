package middleware

import (
	"net/http"
	"strings"

	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		principal, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole rejects the request before any handler logic runs unless the
// resolved principal carries the given role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if !principal.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the request's resolved principal, or Anonymous when
// none was set by JWTAuth.
func GetPrincipal(c *gin.Context) services.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return services.Anonymous
	}
	principal, ok := value.(services.Principal)
	if !ok {
		return services.Anonymous
	}
	return principal
}
