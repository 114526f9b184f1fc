package service

import "context"

// Session payment states as the reconciler sees them, regardless of gateway.
const PaymentStatusPaid = "paid"

// CheckoutInput configures a single-line-item checkout session. Amount is in
// major currency units as entered by the donor.
type CheckoutInput struct {
	Amount     int64
	DonorName  string
	DonorEmail string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the provider's handle for a started checkout.
type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// SessionStatus is the authoritative outcome of a checkout session.
// AmountMinor is in the provider's minor units (cents/paisa).
type SessionStatus struct {
	PaymentStatus string
	AmountMinor   int64
	Currency      string
	PayerEmail    string
	PayerName     string
	TransactionID string
}

// Gateway abstracts the external payment provider. Implementations must not
// write anything; the reconciler owns the funding ledger.
type Gateway interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error)
}
