package model

import (
	"time"

	"github.com/google/uuid"
)

// Donor represents a registered platform user, regardless of current role.
// Email is the natural key: every lookup the access-control engine performs
// goes through the unique index on donor_email.
type Donor struct {
	DonorID uuid.UUID `gorm:"column:donor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donor_id"`

	DonorEmail string `gorm:"column:donor_email;size:255;not null;uniqueIndex" json:"email"`
	DonorName  string `gorm:"column:donor_name;size:100;not null" json:"name"`

	Role   string `gorm:"column:role;type:varchar(20);not null;default:'Donor'" json:"role"`
	Status string `gorm:"column:status;type:varchar(20);not null;default:'Active'" json:"status"`

	BloodGroup string `gorm:"column:blood_group;size:8" json:"bloodGroup"`
	District   string `gorm:"column:district;size:100" json:"district"`
	Upazila    string `gorm:"column:upazila;size:100" json:"upazila"`

	PhotoURL string `gorm:"column:photo_url;type:text" json:"photoURL,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}
