package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SessionHandler struct {
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (sh *SessionHandler) ListByClient(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sessions, err := sh.sessionService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sessions": sessions})
}

func (sh *SessionHandler) ListByGoal(c *gin.Context) {
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sessions, err := sh.sessionService.ListByGoal(c.Request.Context(), goalID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sessions": sessions})
}

func (sh *SessionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := sh.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

func (sh *SessionHandler) Record(c *gin.Context) {
	var session types.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	recorded, err := sh.sessionService.Record(c.Request.Context(), &session)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": recorded})
}

func (sh *SessionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sh.sessionService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
