package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/auth"
)

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate guards every protected route. The bearer value is either the
// master API key or a token previously issued by the exchange endpoint.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Acceso no autorizado: Falta la cabecera de autorización.",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Acceso no autorizado: Token inválido o no proporcionado.",
			})
			return
		}

		token := parts[1]
		if err := m.authService.VerifyAPIKey(token); err == nil {
			c.Next()
			return
		}
		if err := m.authService.ValidateToken(token); err == nil {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Acceso no autorizado: Token inválido o no proporcionado.",
		})
	}
}
