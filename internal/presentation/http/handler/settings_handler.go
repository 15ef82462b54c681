package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/request"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
	"github.com/laundrypro/laundry-api/pkg/email"
)

// SettingsHandler handles settings and contact HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	contactService  *service.ContactService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, contactService *service.ContactService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, contactService: contactService}
}

// Get handles retrieving the admin settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles updating the admin settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		Email:        req.Email,
		Password:     req.Password,
		BankAccount:  req.BankAccount,
		QRISImage:    req.QRISImage,
		Logo:         req.Logo,
		Phone:        req.Phone,
		ContactEmail: req.ContactEmail,
		Address:      req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// PaymentInfo handles the public payment details lookup
func (h *SettingsHandler) PaymentInfo(c *gin.Context) {
	info, err := h.settingsService.GetPaymentInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment info retrieved successfully", info)
}

// Contact handles the public contact form submission
func (h *SettingsHandler) Contact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.contactService.SendMessage(c.Request.Context(), &email.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Message sent successfully", nil)
}
