package handler

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/request"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
	"github.com/laundrypro/laundry-api/pkg/pagination"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
	storagePath    string
	uploadMaxSize  int64
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, storagePath string, uploadMaxSize int64) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		storagePath:    storagePath,
		uploadMaxSize:  uploadMaxSize,
	}
}

// List handles the admin payment listing with filters and pagination
func (h *PaymentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PaymentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := enum.ParsePaymentStatus(statusStr)
		if err != nil {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		params.Status = &status
	}

	if methodStr := c.Query("method"); methodStr != "" {
		method, err := enum.ParsePaymentMethod(methodStr)
		if err != nil {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		params.Method = &method
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Update handles the admin payment update
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePaymentInput{Notes: req.Notes}
	if req.Status != nil {
		status, err := enum.ParsePaymentStatus(*req.Status)
		if err != nil {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		input.Status = &status
	}
	if req.Method != nil {
		method, err := enum.ParsePaymentMethod(*req.Method)
		if err != nil {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		input.Method = &method
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

var allowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// UploadProof handles the public payment proof upload for an order
func (h *PaymentHandler) UploadProof(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	file, err := c.FormFile("proof")
	if err != nil {
		response.BadRequest(c, "Proof file is required")
		return
	}

	if h.uploadMaxSize > 0 && file.Size > h.uploadMaxSize {
		response.BadRequest(c, "File is too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedProofExtensions[ext] {
		response.BadRequest(c, "Unsupported file type")
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(h.storagePath, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.InternalServerError(c, "Failed to store file")
		return
	}

	payment, err := h.paymentService.AttachProof(c.Request.Context(), orderID, filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment proof uploaded successfully", payment)
}
