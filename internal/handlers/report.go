package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (rh *ReportHandler) SessionStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := rh.reportService.SessionStats(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"report": report})
}

func (rh *ReportHandler) ClientProgress(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	from, ok := queryTime(c, "from")
	if !ok {
		return
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return
	}
	report, err := rh.reportService.ClientProgress(c.Request.Context(), clientID, from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"report": report})
}

// queryTime parses an optional RFC 3339 or YYYY-MM-DD query parameter. A
// missing parameter is a zero time (open bound).
func queryTime(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	RespondError(c, http.StatusBadRequest, "bad_time", fmt.Errorf("%s must be RFC 3339 or YYYY-MM-DD", name))
	return time.Time{}, false
}
