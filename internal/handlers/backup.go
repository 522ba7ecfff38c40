package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
)

type BackupHandler struct {
	backupService services.BackupService
}

func NewBackupHandler(backupService services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (bh *BackupHandler) Export(c *gin.Context) {
	doc, err := bh.backupService.Export(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Import takes the raw request body as the backup document; the body is
// the wire format, not a wrapper around it.
func (bh *BackupHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	if err := bh.backupService.Import(c.Request.Context(), raw); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"imported": true})
}

func (bh *BackupHandler) Clear(c *gin.Context) {
	if err := bh.backupService.Clear(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}

func (bh *BackupHandler) Refresh(c *gin.Context) {
	if err := bh.backupService.Refresh(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"refreshed": true})
}
