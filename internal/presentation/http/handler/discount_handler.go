package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/request"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// DiscountHandler handles discount HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
	pricingService  *service.PricingService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService, pricingService *service.PricingService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService, pricingService: pricingService}
}

// ListActive handles the public listing of currently valid discounts
func (h *DiscountHandler) ListActive(c *gin.Context) {
	discounts, err := h.discountService.ListActiveDiscounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discounts retrieved successfully", discounts)
}

// Validate handles strict promo code validation used by the checkout UI
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req request.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Promo code is required")
		return
	}

	discount, err := h.pricingService.ValidatePromoCode(c.Request.Context(), req.PromoCode, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promo code is valid", discount)
}

// List handles the admin listing of all discounts
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.discountService.ListDiscounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discounts retrieved successfully", discounts)
}

// Create handles creating a discount
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		response.BadRequest(c, "Invalid start date")
		return
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		response.BadRequest(c, "Invalid end date")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), &service.CreateDiscountInput{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: decimal.NewFromFloat(req.DiscountPercent),
		PromoCode:       req.PromoCode,
		StartDate:       startDate,
		EndDate:         endDate,
		IsActive:        isActive,
		Image:           req.Image,
		BannerImage:     req.BannerImage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", discount)
}

// Update handles updating a discount
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	var req request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateDiscountInput{
		Title:       req.Title,
		Description: req.Description,
		PromoCode:   req.PromoCode,
		StartDate:   parseDatePtr(req.StartDate),
		EndDate:     parseDatePtr(req.EndDate),
		IsActive:    req.IsActive,
		Image:       req.Image,
		BannerImage: req.BannerImage,
	}
	if req.DiscountPercent != nil {
		percent := decimal.NewFromFloat(*req.DiscountPercent)
		input.DiscountPercent = &percent
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", discount)
}

// Delete handles deleting a discount
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount deleted successfully", nil)
}
