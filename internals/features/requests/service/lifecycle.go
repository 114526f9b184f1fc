package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/dto"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
)

const anonymousDonorName = "Anonymous"

// NameResolver resolves a display name for a verified email, best effort.
// The donor directory satisfies this.
type NameResolver interface {
	DisplayName(ctx context.Context, email string) string
}

// LifecycleEngine enforces the request state machine:
//
//	pending → inprogress → {done, canceled}
//	pending → canceled (owner withdraws before anyone accepts)
type LifecycleEngine struct {
	Requests RequestStore
	Names    NameResolver
}

func NewLifecycleEngine(store RequestStore, names NameResolver) *LifecycleEngine {
	return &LifecycleEngine{Requests: store, Names: names}
}

// Create inserts a new request owned by requesterEmail, always pending.
func (e *LifecycleEngine) Create(ctx context.Context, requesterEmail string, req *dto.CreateRequestRequest) (*model.DonationRequest, error) {
	if requesterEmail == "" {
		return nil, apperr.Unauthorized("Unauthorized access")
	}
	if req.RecipientDistrict == "" || req.RecipientUpazila == "" || req.BloodGroup == "" {
		return nil, apperr.InvalidArgument("recipient district, upazila and blood group are required")
	}

	r := req.ToModel(requesterEmail)
	r.DonationStatus = constants.DonationPending
	r.CreatedAt = time.Now()

	if err := e.Requests.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Accept claims a pending request for the caller. Self-donation is rejected
// up front; the store's conditional update re-checks both preconditions so a
// losing racer comes back with rows-affected 0 and is reported as a conflict.
func (e *LifecycleEngine) Accept(ctx context.Context, id uuid.UUID, callerEmail string) (*model.DonationRequest, error) {
	if callerEmail == "" {
		return nil, apperr.Unauthorized("Unauthorized access")
	}

	req, err := e.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.RequesterEmail == callerEmail {
		return nil, apperr.Conflict("you cannot donate to your own request")
	}
	if req.DonationStatus != constants.DonationPending {
		return nil, apperr.Conflict("request is no longer pending")
	}

	donorName := e.Names.DisplayName(ctx, callerEmail)
	if donorName == "" {
		donorName = anonymousDonorName
	}

	won, err := e.Requests.AcceptPending(ctx, id, callerEmail, donorName)
	if err != nil {
		return nil, err
	}
	if !won {
		// someone else accepted between the read above and the update
		return nil, apperr.Conflict("request is no longer pending")
	}

	return e.Requests.FindByID(ctx, id)
}

// SetStatus is the explicit owner/volunteer/admin transition. Any of the four
// statuses is a valid target; values outside the set are rejected. Callers
// that are neither the owner nor elevated are refused.
func (e *LifecycleEngine) SetStatus(ctx context.Context, id uuid.UUID, status, callerEmail string, elevated bool) error {
	if callerEmail == "" {
		return apperr.Unauthorized("Unauthorized access")
	}
	if !constants.IsValidDonationStatus(status) {
		return apperr.InvalidArgument("invalid donation status")
	}

	req, err := e.Requests.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !elevated && req.RequesterEmail != callerEmail {
		return apperr.Forbidden("Forbidden")
	}

	rows, err := e.Requests.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("request not found")
	}
	return nil
}

// DeleteOwn removes the caller's own request.
func (e *LifecycleEngine) DeleteOwn(ctx context.Context, id uuid.UUID, callerEmail string) error {
	if callerEmail == "" {
		return apperr.Unauthorized("Unauthorized access")
	}

	req, err := e.Requests.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if req.RequesterEmail != callerEmail {
		return apperr.Forbidden("Forbidden")
	}

	rows, err := e.Requests.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("request not found")
	}
	return nil
}

// DeleteAny removes any request; capability gating (Admin) happens before the
// call.
func (e *LifecycleEngine) DeleteAny(ctx context.Context, id uuid.UUID) error {
	rows, err := e.Requests.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("request not found")
	}
	return nil
}
