package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
)

// RetentionHandler handles the data management endpoints
type RetentionHandler struct {
	retentionService *service.RetentionService
}

// NewRetentionHandler creates a new retention handler
func NewRetentionHandler(retentionService *service.RetentionService) *RetentionHandler {
	return &RetentionHandler{retentionService: retentionService}
}

// Preview handles the read-only deletion preview
func (h *RetentionHandler) Preview(c *gin.Context) {
	preview, err := h.retentionService.Preview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data summary retrieved successfully", preview)
}

// Purge handles a bulk deletion request
func (h *RetentionHandler) Purge(c *gin.Context) {
	dataType := c.Query("type")
	if dataType == "" {
		response.BadRequest(c, "Data type is required")
		return
	}

	input := &service.PurgeInput{DataType: dataType}

	if olderThanStr := c.Query("olderThan"); olderThanStr != "" {
		olderThan, err := strconv.Atoi(olderThanStr)
		if err != nil || olderThan <= 0 {
			response.BadRequest(c, "Invalid olderThan value")
			return
		}
		input.OlderThanDays = &olderThan
	}

	if statusStr := c.Query("status"); statusStr != "" {
		input.Status = &statusStr
	}

	if dateFromStr := c.Query("dateFrom"); dateFromStr != "" {
		dateFrom, ok := parseDate(dateFromStr)
		if !ok {
			response.BadRequest(c, "Invalid dateFrom value")
			return
		}
		input.DateFrom = &dateFrom
	}

	if dateToStr := c.Query("dateTo"); dateToStr != "" {
		dateTo, ok := parseDate(dateToStr)
		if !ok {
			response.BadRequest(c, "Invalid dateTo value")
			return
		}
		input.DateTo = &dateTo
	}

	result, err := h.retentionService.Purge(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data deleted successfully", result)
}
