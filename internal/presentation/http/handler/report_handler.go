package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get handles building a report over an optional date window
func (h *ReportHandler) Get(c *gin.Context) {
	var from, to *time.Time

	if startDateStr := c.Query("startDate"); startDateStr != "" {
		startDate, ok := parseDate(startDateStr)
		if !ok {
			response.BadRequest(c, "Invalid start date")
			return
		}
		from = &startDate
	}

	if endDateStr := c.Query("endDate"); endDateStr != "" {
		endDate, ok := parseDate(endDateStr)
		if !ok {
			response.BadRequest(c, "Invalid end date")
			return
		}
		// Include the whole end day
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}
