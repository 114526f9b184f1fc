package dto

import "strings"

// CheckoutRequest initiates a checkout session. Amount is in major currency
// units; name/email are optional so guests can donate.
type CheckoutRequest struct {
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	DonorName  string `json:"donorName,omitempty"`
	DonorEmail string `json:"donorEmail,omitempty" validate:"omitempty,email"`
}

func (r *CheckoutRequest) Normalize() {
	r.DonorName = strings.TrimSpace(r.DonorName)
	r.DonorEmail = strings.TrimSpace(strings.ToLower(r.DonorEmail))
}

// ReconcileRequest confirms a completed checkout by its session reference.
type ReconcileRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}
