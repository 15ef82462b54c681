package request

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	Password     *string `json:"password" binding:"omitempty,min=8"`
	BankAccount  *string `json:"bank_account"`
	QRISImage    *string `json:"qris_image"`
	Logo         *string `json:"logo"`
	Phone        *string `json:"phone"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Address      *string `json:"address"`
}

// ContactRequest represents a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required,min=5"`
}
