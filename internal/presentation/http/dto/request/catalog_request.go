package request

// CreateServiceRequest represents a service creation request
type CreateServiceRequest struct {
	ServiceName   string  `json:"service_name" binding:"required,min=2,max=255"`
	Description   *string `json:"description"`
	PricePerKg    float64 `json:"price_per_kg" binding:"required,gt=0"`
	EstimatedTime *string `json:"estimated_time" binding:"omitempty,max=100"`
}

// UpdateServiceRequest represents a service update request
type UpdateServiceRequest struct {
	ServiceName   *string `json:"service_name" binding:"omitempty,min=2,max=255"`
	Description   *string `json:"description"`
	EstimatedTime *string `json:"estimated_time" binding:"omitempty,max=100"`
}

// SetPriceRequest represents a new price row for a service
type SetPriceRequest struct {
	PricePerKg    float64 `json:"price_per_kg" binding:"required,gt=0"`
	EffectiveDate *string `json:"effective_date"` // YYYY-MM-DD, defaults to now
	Notes         *string `json:"notes"`
}
