package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/usecase/report"
)

type ReportHandler struct {
	daily *report.Daily
	stats *report.Stats
}

func NewReportHandler(daily *report.Daily, stats *report.Stats) *ReportHandler {
	return &ReportHandler{daily: daily, stats: stats}
}

// Daily reports on ?date= (YYYY-MM-DD), defaulting to today.
func (h *ReportHandler) Daily(c *gin.Context) {
	day, err := domainDay(c.Query("date"))
	if err != nil {
		httperr.From(c, err, "Invalid date")
		return
	}

	out, err := h.daily.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.From(c, err, "Failed to build daily report")
		return
	}

	httpresp.OK(c, gin.H{"report": out})
}

func (h *ReportHandler) Stats(c *gin.Context) {
	out, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err, "Failed to compute stats")
		return
	}

	httpresp.OK(c, gin.H{"stats": out})
}
