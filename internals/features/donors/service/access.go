package service

import (
	"context"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
)

// Guard is the access-control engine: pure read + decision against the donor
// directory. A missing identity is Unauthorized; an identity without the
// required role (or with no donor record at all) is Forbidden. The two must
// stay distinct — one is an authentication failure, the other authorization.
type Guard struct {
	Donors DonorStore
}

func NewGuard(store DonorStore) *Guard {
	return &Guard{Donors: store}
}

func (g *Guard) RequireAuthenticated(email string) error {
	if email == "" {
		return apperr.Unauthorized("Unauthorized access")
	}
	return nil
}

// RequireOwner compares case-sensitively: the directory lowercases emails on
// registration, and the identity context hands them back the same way.
func (g *Guard) RequireOwner(callerEmail, ownerEmail string) error {
	if err := g.RequireAuthenticated(callerEmail); err != nil {
		return err
	}
	if callerEmail != ownerEmail {
		return apperr.Forbidden("Forbidden")
	}
	return nil
}

func (g *Guard) RequireAdmin(ctx context.Context, email string) error {
	return g.requireRole(ctx, email, constants.RoleAdmin)
}

func (g *Guard) RequireAdminOrVolunteer(ctx context.Context, email string) error {
	return g.requireRole(ctx, email, constants.RoleAdmin, constants.RoleVolunteer)
}

func (g *Guard) requireRole(ctx context.Context, email string, allowed ...string) error {
	if err := g.RequireAuthenticated(email); err != nil {
		return err
	}
	donor, err := g.Donors.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return apperr.Forbidden("Forbidden")
		}
		return err
	}
	for _, role := range allowed {
		if donor.Role == role {
			return nil
		}
	}
	return apperr.Forbidden("Forbidden")
}

// HasElevatedRole reports whether the caller is Admin or Volunteer, for
// operations where ownership is an alternative grant (set-status, delete).
func (g *Guard) HasElevatedRole(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	donor, err := g.Donors.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return donor.Role == constants.RoleAdmin || donor.Role == constants.RoleVolunteer, nil
}
