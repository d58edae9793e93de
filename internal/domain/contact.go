package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// Receipt holds the platform-assigned id of the delivered notification
type Receipt struct {
	MessageID int64
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates a submission and forwards it as a
	// Telegram notification
	SendContactMessage(ctx context.Context, req *ContactRequest) (*Receipt, error)
}
