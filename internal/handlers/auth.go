package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Pair(c *gin.Context) {
	var body struct {
		Passcode string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	token, err := ah.authService.Pair(c.Request.Context(), body.Passcode)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"token": token})
}
