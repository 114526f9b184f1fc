package dto

import (
	"strings"

	rModel "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
)

// CreateRequestRequest — requester email comes from the verified identity,
// never from the body.
type CreateRequestRequest struct {
	RequesterName     string `json:"requesterName,omitempty"`
	RecipientDistrict string `json:"recipientDistrict" validate:"required"`
	RecipientUpazila  string `json:"recipientUpazila" validate:"required"`
	BloodGroup        string `json:"bloodGroup" validate:"required"`
}

func (r *CreateRequestRequest) Normalize() {
	r.RequesterName = strings.TrimSpace(r.RequesterName)
	r.RecipientDistrict = strings.TrimSpace(r.RecipientDistrict)
	r.RecipientUpazila = strings.TrimSpace(r.RecipientUpazila)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
}

func (r *CreateRequestRequest) ToModel(requesterEmail string) *rModel.DonationRequest {
	return &rModel.DonationRequest{
		RequesterEmail:    requesterEmail,
		RequesterName:     r.RequesterName,
		RecipientDistrict: r.RecipientDistrict,
		RecipientUpazila:  r.RecipientUpazila,
		BloodGroup:        r.BloodGroup,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
