package service

import (
	"context"
	"strings"
	"time"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/dto"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/model"
)

// Directory owns all mutations of the donor ledger.
type Directory struct {
	Donors DonorStore
}

func NewDirectory(store DonorStore) *Directory {
	return &Directory{Donors: store}
}

// Register creates a donor with role=Donor, status=Active. The unique index
// on donor_email rejects duplicates regardless of request interleaving.
func (d *Directory) Register(ctx context.Context, req *dto.RegisterDonorRequest) (*model.Donor, error) {
	donor := req.ToModel()
	donor.Role = constants.RoleDonor
	donor.Status = constants.StatusActive
	donor.CreatedAt = time.Now()

	if err := d.Donors.Insert(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// UpdateStatus flips the activity flag and nothing else.
func (d *Directory) UpdateStatus(ctx context.Context, email, status string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || status == "" {
		return apperr.InvalidArgument("Missing email or status")
	}
	if !constants.IsValidStatus(status) {
		return apperr.InvalidArgument("Invalid status value")
	}

	rows, err := d.Donors.UpdateFields(ctx, email, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("donor not found")
	}
	return nil
}

// UpdateRole is capability-gated to Admin by the caller; the directory only
// enforces the value set here.
func (d *Directory) UpdateRole(ctx context.Context, email, role string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || role == "" {
		return apperr.InvalidArgument("Missing email or role")
	}
	if !constants.IsValidRole(role) {
		return apperr.InvalidArgument("Invalid role value")
	}

	rows, err := d.Donors.UpdateFields(ctx, email, map[string]interface{}{
		"role": role,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("donor not found")
	}
	return nil
}

// UpdateProfile edits the caller's own record. Email is the identity key and
// is never touched.
func (d *Directory) UpdateProfile(ctx context.Context, callerEmail string, req *dto.UpdateProfileRequest) error {
	if callerEmail == "" {
		return apperr.Unauthorized("Unauthorized access")
	}

	rows, err := d.Donors.UpdateFields(ctx, callerEmail, map[string]interface{}{
		"donor_name":  req.Name,
		"blood_group": req.BloodGroup,
		"district":    req.District,
		"upazila":     req.Upazila,
		"photo_url":   req.PhotoURL,
		"updated_at":  time.Now(),
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("donor not found")
	}
	return nil
}

func (d *Directory) LookupByEmail(ctx context.Context, email string) (*model.Donor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.InvalidArgument("Missing email")
	}
	return d.Donors.FindByEmail(ctx, email)
}

// DisplayName resolves a best-effort display name for the given email.
// Used by the accept transition and payment reconciliation.
func (d *Directory) DisplayName(ctx context.Context, email string) string {
	if email == "" {
		return ""
	}
	donor, err := d.Donors.FindByEmail(ctx, email)
	if err != nil {
		return ""
	}
	return donor.DonorName
}

func (d *Directory) List(ctx context.Context, limit, offset int) ([]model.Donor, int64, error) {
	donors, err := d.Donors.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := d.Donors.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return donors, total, nil
}
