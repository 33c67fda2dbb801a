package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/usecase"
)

// ReportHandler serves the daily report as a plain-text download.
type ReportHandler struct {
	report *usecase.ReportService
}

func NewReportHandler(report *usecase.ReportService) *ReportHandler {
	return &ReportHandler{report: report}
}

func (h *ReportHandler) Daily(c *gin.Context) {
	text := h.report.Daily()
	c.Header("Content-Disposition", `attachment; filename="`+h.report.Filename()+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
