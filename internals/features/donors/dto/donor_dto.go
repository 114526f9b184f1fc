package dto

import (
	"strings"

	uModel "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterDonorRequest — self-registration. Role and status are forced by the
// directory (Donor/Active), never taken from the client.
type RegisterDonorRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	BloodGroup string `json:"bloodGroup" validate:"required"`
	District   string `json:"district" validate:"required"`
	Upazila    string `json:"upazila" validate:"required"`
	PhotoURL   string `json:"photoURL,omitempty"`
}

func (r *RegisterDonorRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
	r.District = strings.TrimSpace(r.District)
	r.Upazila = strings.TrimSpace(r.Upazila)
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
}

func (r *RegisterDonorRequest) ToModel() *uModel.Donor {
	return &uModel.Donor{
		DonorEmail: r.Email,
		DonorName:  r.Name,
		BloodGroup: r.BloodGroup,
		District:   r.District,
		Upazila:    r.Upazila,
		PhotoURL:   r.PhotoURL,
	}
}

// UpdateDonorStatusRequest — both fields are mandatory.
type UpdateDonorStatusRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"required"`
}

// UpdateDonorRoleRequest — admin only; role checked against the known set.
type UpdateDonorRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=Donor Volunteer Admin"`
}

// UpdateProfileRequest — self-edit of profile fields; photo stays optional.
type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	BloodGroup string `json:"bloodGroup" validate:"required"`
	District   string `json:"district" validate:"required"`
	Upazila    string `json:"upazila" validate:"required"`
	PhotoURL   string `json:"photoURL,omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
	r.District = strings.TrimSpace(r.District)
	r.Upazila = strings.TrimSpace(r.Upazila)
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
}
