package service

import (
	"context"
	"strings"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
)

// UrgentLimit caps the public urgent-requests view.
const UrgentLimit = 4

// NormalizeBloodGroup restores "+" signs lost in transit. "A+" arrives as
// "A " when the client forgets to URL-encode the plus; a space inside a blood
// group token can only have been a plus.
func NormalizeBloodGroup(bg string) string {
	return strings.ReplaceAll(bg, " ", "+")
}

// QueryEngine builds the read-side views over the request ledger.
type QueryEngine struct {
	Requests RequestStore
}

func NewQueryEngine(store RequestStore) *QueryEngine {
	return &QueryEngine{Requests: store}
}

// OwnRequests pages through the caller's requests, newest first. The total is
// counted independently of the slice so clients can render page counts.
func (q *QueryEngine) OwnRequests(ctx context.Context, email string, limit, offset int) ([]model.DonationRequest, int64, error) {
	f := Filter{RequesterEmail: email}
	reqs, err := q.Requests.List(ctx, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := q.Requests.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// RecentOwn returns the caller's newest few requests for the dashboard.
func (q *QueryEngine) RecentOwn(ctx context.Context, email string, limit int) ([]model.DonationRequest, error) {
	return q.Requests.List(ctx, Filter{RequesterEmail: email}, limit, 0)
}

// AllRequests is the admin/volunteer view: paginated, optionally filtered.
func (q *QueryEngine) AllRequests(ctx context.Context, f Filter, limit, offset int) ([]model.DonationRequest, int64, error) {
	f.BloodGroup = NormalizeBloodGroup(f.BloodGroup)
	reqs, err := q.Requests.List(ctx, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := q.Requests.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// Search is the public donor-facing filter over blood group and locality.
func (q *QueryEngine) Search(ctx context.Context, bloodGroup, district, upazila string) ([]model.DonationRequest, error) {
	f := Filter{
		BloodGroup: NormalizeBloodGroup(bloodGroup),
		District:   strings.TrimSpace(district),
		Upazila:    strings.TrimSpace(upazila),
	}
	return q.Requests.List(ctx, f, 0, 0)
}

// Urgent returns at most UrgentLimit pending requests, newest first.
func (q *QueryEngine) Urgent(ctx context.Context, bloodGroup string) ([]model.DonationRequest, error) {
	f := Filter{
		Status:     constants.DonationPending,
		BloodGroup: NormalizeBloodGroup(bloodGroup),
	}
	return q.Requests.List(ctx, f, UrgentLimit, 0)
}
