package request

// UpdatePaymentRequest represents a payment update request
type UpdatePaymentRequest struct {
	Status *string `json:"status"`
	Method *string `json:"payment_method"`
	Notes  *string `json:"notes"`
}
