package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/auth"
)

type AuthHandler struct {
	responder
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service, devMode bool) *AuthHandler {
	return &AuthHandler{responder: responder{devMode: devMode}, authService: authService}
}

type tokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// Token exchanges the master API key for a short-lived bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "Se requiere el campo api_key.")
		return
	}

	if err := h.authService.VerifyAPIKey(req.APIKey); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Acceso no autorizado: Token inválido o no proporcionado.",
		})
		return
	}

	token, ttl, err := h.authService.IssueToken()
	if err != nil {
		h.fail(c, http.StatusServiceUnavailable, "El intercambio de tokens no está habilitado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     statusSuccess,
		"token":      token,
		"expires_in": int(ttl.Seconds()),
	})
}
