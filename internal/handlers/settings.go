package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (sh *SettingsHandler) Get(c *gin.Context) {
	RespondOK(c, gin.H{"settings": sh.settingsService.Get(c.Request.Context())})
}

func (sh *SettingsHandler) Update(c *gin.Context) {
	var settings types.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	updated, err := sh.settingsService.Update(c.Request.Context(), settings)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"settings": updated})
}

func (sh *SettingsHandler) Reset(c *gin.Context) {
	settings, err := sh.settingsService.Reset(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"settings": settings})
}
