package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/request"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles service and price HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPublic handles the public catalog listing with effective prices only
func (h *CatalogHandler) ListPublic(c *gin.Context) {
	services, err := h.catalogService.ListPublicServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", services)
}

// List handles listing services with their price history
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", services)
}

// Get handles retrieving a single service
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Create handles creating a service
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		ServiceName:   req.ServiceName,
		Description:   req.Description,
		PricePerKg:    decimal.NewFromFloat(req.PricePerKg),
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Update handles updating a service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, &service.UpdateServiceInput{
		ServiceName:   req.ServiceName,
		Description:   req.Description,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles deleting a service
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}

// SetPrice handles appending a new price row to a service
func (h *CatalogHandler) SetPrice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	price, err := h.catalogService.SetPrice(c.Request.Context(), &service.SetPriceInput{
		ServiceID:     id,
		PricePerKg:    decimal.NewFromFloat(req.PricePerKg),
		EffectiveDate: parseDatePtr(req.EffectiveDate),
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Price set successfully", price)
}

// ListPrices handles listing a service's price history
func (h *CatalogHandler) ListPrices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	prices, err := h.catalogService.ListPrices(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Prices retrieved successfully", prices)
}
