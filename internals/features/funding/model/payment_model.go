package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentRecord is one reconciled monetary donation. The unique index on
// transaction_id is what makes reconciliation idempotent: the second insert
// for the same provider transaction fails at the storage layer no matter how
// the calls interleave. Records are never mutated or deleted.
type PaymentRecord struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// Provider-issued transaction identifier (Stripe payment intent /
	// Midtrans transaction id).
	TransactionID string `gorm:"column:transaction_id;size:100;not null;uniqueIndex" json:"transactionId"`

	// Major currency units, converted from the provider's minor units.
	Amount   float64 `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Currency string  `gorm:"column:currency;size:10;not null" json:"currency"`

	DonorEmail string `gorm:"column:donor_email;size:255" json:"donorEmail"`
	DonorName  string `gorm:"column:donor_name;size:100;not null;default:'Anonymous'" json:"donorName"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;default:'paid'" json:"payment_status"`
	Gateway       string `gorm:"column:gateway;type:varchar(20);not null" json:"gateway"`

	// Raw provider session snapshot, kept for diagnostics.
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"-"`

	PaidAt time.Time `gorm:"column:paid_at;not null" json:"paidAt"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}
