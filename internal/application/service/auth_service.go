package service

import (
	"context"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/laundrypro/laundry-api/pkg/oauth"
	"github.com/laundrypro/laundry-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin authentication
type AuthService struct {
	settingsRepo repository.SettingsRepository
	jwtManager   *utils.JWTManager
	googleOAuth  *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	settingsRepo repository.SettingsRepository,
	jwtManager *utils.JWTManager,
	googleOAuth *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		settingsRepo: settingsRepo,
		jwtManager:   jwtManager,
		googleOAuth:  googleOAuth,
	}
}

// AuthResult represents the result of a successful authentication
type AuthResult struct {
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	Admin        *entity.AdminSettings `json:"admin"`
}

// Login authenticates the admin account with email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	admin, err := s.settingsRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(admin)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	adminID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	admin, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.ID != adminID {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(admin)
}

// GetGoogleAuthURL returns the Google consent URL for the given state
func (s *AuthService) GetGoogleAuthURL(state string) (string, error) {
	if !s.googleOAuth.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.googleOAuth.GetAuthURL(state), nil
}

// HandleGoogleCallback completes the Google sign-in flow. Only the configured
// admin email is accepted; any other Google account is rejected.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (*AuthResult, error) {
	token, err := s.googleOAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	userInfo, err := s.googleOAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}
	if !userInfo.VerifiedEmail {
		return nil, apperror.ErrUnauthorized
	}

	admin, err := s.settingsRepo.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.ErrForbidden
	}

	return s.issueTokens(admin)
}

func (s *AuthService) issueTokens(admin *entity.AdminSettings) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(admin.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}
