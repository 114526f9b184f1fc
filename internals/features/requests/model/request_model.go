package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationRequest is a single call for blood. donation_status starts at
// pending; it leaves pending only through the accept transition or an explicit
// set-status/cancel by an authorized actor. done and canceled are terminal.
type DonationRequest struct {
	RequestID uuid.UUID `gorm:"column:request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"request_id"`

	RequesterEmail string `gorm:"column:requester_email;size:255;not null;index" json:"requesterEmail"`
	RequesterName  string `gorm:"column:requester_name;size:100" json:"requesterName"`

	RecipientDistrict string `gorm:"column:recipient_district;size:100;not null" json:"recipientDistrict"`
	RecipientUpazila  string `gorm:"column:recipient_upazila;size:100;not null" json:"recipientUpazila"`
	BloodGroup        string `gorm:"column:blood_group;size:8;not null;index" json:"bloodGroup"`

	DonationStatus string `gorm:"column:donation_status;type:varchar(20);not null;default:'pending';index" json:"donation_status"`

	// Set exactly once by the accept transition, together with DonationStatus.
	DonorEmail *string `gorm:"column:donor_email;size:255" json:"donorEmail,omitempty"`
	DonorName  *string `gorm:"column:donor_name;size:100" json:"donorName,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (DonationRequest) TableName() string {
	return "donation_requests"
}
