package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(goalService services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (gh *GoalHandler) ListByClient(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	activeOnly := c.Query("active") == "true"
	goals, err := gh.goalService.ListByClient(c.Request.Context(), clientID, activeOnly)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"goals": goals})
}

func (gh *GoalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	goal, err := gh.goalService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"goal": goal})
}

func (gh *GoalHandler) Create(c *gin.Context) {
	var goal types.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	created, err := gh.goalService.Create(c.Request.Context(), &goal)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": created})
}

func (gh *GoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var goal types.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	goal.ID = id
	updated, err := gh.goalService.Update(c.Request.Context(), &goal)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"goal": updated})
}

func (gh *GoalHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status types.GoalStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_body", err)
		return
	}
	goal, err := gh.goalService.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"goal": goal})
}

func (gh *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := gh.goalService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
