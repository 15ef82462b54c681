package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/request"
	"github.com/laundrypro/laundry-api/internal/presentation/http/dto/response"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authService       *service.AuthService
	dashboardURL      string
	dashboardErrorURL string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, dashboardURL, dashboardErrorURL string) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		dashboardURL:      dashboardURL,
		dashboardErrorURL: dashboardErrorURL,
	}
}

// Login handles admin login with email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Refresh handles token refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", result)
}

// GoogleLogin starts the Google sign-in flow by redirecting to consent
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)

	authURL, err := h.authService.GetGoogleAuthURL(state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(302, authURL)
}

// GoogleCallback completes the Google sign-in flow and redirects to the
// dashboard with the token pair, or to the error page on failure
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != cookieState {
		c.Redirect(302, h.dashboardErrorURL+"?error=invalid_state")
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(302, h.dashboardErrorURL+"?error=missing_code")
		return
	}

	result, err := h.authService.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		c.Redirect(302, h.dashboardErrorURL+"?error=unauthorized")
		return
	}

	redirect := h.dashboardURL +
		"?access_token=" + url.QueryEscape(result.AccessToken) +
		"&refresh_token=" + url.QueryEscape(result.RefreshToken)
	c.Redirect(302, redirect)
}
