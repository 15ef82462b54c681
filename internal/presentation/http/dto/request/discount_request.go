package request

// CreateDiscountRequest represents a discount creation request
type CreateDiscountRequest struct {
	Title           string  `json:"title" binding:"required,min=2,max=255"`
	Description     *string `json:"description"`
	DiscountPercent float64 `json:"discount_percent" binding:"required,gt=0,lte=100"`
	PromoCode       *string `json:"promo_code" binding:"omitempty,max=50"`
	StartDate       string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate         string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
	IsActive        *bool   `json:"is_active"`
	Image           *string `json:"image"`
	BannerImage     *string `json:"banner_image"`
}

// UpdateDiscountRequest represents a discount update request
type UpdateDiscountRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=2,max=255"`
	Description     *string  `json:"description"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,gt=0,lte=100"`
	PromoCode       *string  `json:"promo_code" binding:"omitempty,max=50"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	IsActive        *bool    `json:"is_active"`
	Image           *string  `json:"image"`
	BannerImage     *string  `json:"banner_image"`
}

// ValidatePromoRequest represents a promo code validation request
type ValidatePromoRequest struct {
	PromoCode string `json:"promo_code" binding:"required"`
}
