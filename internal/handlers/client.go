package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/services"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type ClientHandler struct {
	clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (ch *ClientHandler) List(c *gin.Context) {
	RespondOK(c, gin.H{"clients": ch.clientService.List(c.Request.Context())})
}

func (ch *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, err := ch.clientService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"client": client})
}

func (ch *ClientHandler) Create(c *gin.Context) {
	var client types.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	created, err := ch.clientService.Create(c.Request.Context(), &client)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": created})
}

func (ch *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var client types.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	client.ID = id
	updated, err := ch.clientService.Update(c.Request.Context(), &client)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"client": updated})
}

func (ch *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ch.clientService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// pathID parses a uuid path parameter, responding 400 itself on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_id", err)
		return uuid.Nil, false
	}
	return id, true
}
