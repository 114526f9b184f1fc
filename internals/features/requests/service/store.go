package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
)

// Filter narrows request queries. Zero values mean "no constraint".
type Filter struct {
	RequesterEmail string
	BloodGroup     string
	District       string
	Upazila        string
	Status         string
}

// RequestStore is the persistence surface of the request ledger. AcceptPending
// is the one operation with a correctness burden: it must be a single
// conditional update, not a read followed by a write, so that of N concurrent
// accepters exactly one observes rows-affected == 1.
type RequestStore interface {
	Insert(ctx context.Context, req *model.DonationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error)
	AcceptPending(ctx context.Context, id uuid.UUID, donorEmail, donorName string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]model.DonationRequest, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

type gormRequestStore struct {
	db *gorm.DB
}

func NewRequestStore(db *gorm.DB) RequestStore {
	return &gormRequestStore{db: db}
}

func (s *gormRequestStore) Insert(ctx context.Context, req *model.DonationRequest) error {
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return apperr.Upstream("failed to save request", err)
	}
	return nil
}

func (s *gormRequestStore) FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error) {
	var req model.DonationRequest
	err := s.db.WithContext(ctx).Where("request_id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request not found")
		}
		return nil, apperr.Upstream("failed to load request", err)
	}
	return &req, nil
}

// AcceptPending performs the accept transition as one conditional UPDATE.
// Status, donor_email and donor_name change together or not at all, and the
// WHERE clause re-checks both preconditions so two racing accepters cannot
// both win.
func (s *gormRequestStore) AcceptPending(ctx context.Context, id uuid.UUID, donorEmail, donorName string) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.DonationRequest{}).
		Where("request_id = ? AND donation_status = ? AND requester_email <> ?",
			id, constants.DonationPending, donorEmail).
		Updates(map[string]interface{}{
			"donation_status": constants.DonationInProgress,
			"donor_email":     donorEmail,
			"donor_name":      donorName,
		})
	if res.Error != nil {
		return false, apperr.Upstream("failed to accept request", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *gormRequestStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.DonationRequest{}).
		Where("request_id = ?", id).
		Update("donation_status", status)
	if res.Error != nil {
		return 0, apperr.Upstream("failed to update request status", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *gormRequestStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("request_id = ?", id).
		Delete(&model.DonationRequest{})
	if res.Error != nil {
		return 0, apperr.Upstream("failed to delete request", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *gormRequestStore) List(ctx context.Context, f Filter, limit, offset int) ([]model.DonationRequest, error) {
	var reqs []model.DonationRequest
	q := applyFilter(s.db.WithContext(ctx).Model(&model.DonationRequest{}), f).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&reqs).Error; err != nil {
		return nil, apperr.Upstream("failed to list requests", err)
	}
	return reqs, nil
}

func (s *gormRequestStore) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	q := applyFilter(s.db.WithContext(ctx).Model(&model.DonationRequest{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, apperr.Upstream("failed to count requests", err)
	}
	return total, nil
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.RequesterEmail != "" {
		q = q.Where("requester_email = ?", f.RequesterEmail)
	}
	if f.BloodGroup != "" {
		q = q.Where("blood_group = ?", f.BloodGroup)
	}
	if f.District != "" {
		q = q.Where("recipient_district = ?", f.District)
	}
	if f.Upazila != "" {
		q = q.Where("recipient_upazila = ?", f.Upazila)
	}
	if f.Status != "" {
		q = q.Where("donation_status = ?", f.Status)
	}
	return q
}
