package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/model"
)

// FundingTotals is the ledger-wide aggregate. Both fields are zero on an
// empty ledger.
type FundingTotals struct {
	TotalAmount    float64 `json:"totalAmount"`
	TotalDonations int64   `json:"totalDonations"`
}

// PaymentStore is the persistence surface of the funding ledger. Insert must
// surface a duplicate transaction_id as AlreadyExists — that constraint, not
// the caller's existence check, is what closes the reconciliation race.
type PaymentStore interface {
	Insert(ctx context.Context, rec *model.PaymentRecord) error
	FindByTransactionID(ctx context.Context, txID string) (*model.PaymentRecord, error)
	List(ctx context.Context, limit, offset int) ([]model.PaymentRecord, error)
	Count(ctx context.Context) (int64, error)
	Totals(ctx context.Context) (FundingTotals, error)
}

type gormPaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) PaymentStore {
	return &gormPaymentStore{db: db}
}

func (s *gormPaymentStore) Insert(ctx context.Context, rec *model.PaymentRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.AlreadyExists("payment already recorded")
		}
		return apperr.Upstream("failed to save payment record", err)
	}
	return nil
}

func (s *gormPaymentStore) FindByTransactionID(ctx context.Context, txID string) (*model.PaymentRecord, error) {
	var rec model.PaymentRecord
	err := s.db.WithContext(ctx).Where("transaction_id = ?", txID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment record not found")
		}
		return nil, apperr.Upstream("failed to load payment record", err)
	}
	return &rec, nil
}

func (s *gormPaymentStore) List(ctx context.Context, limit, offset int) ([]model.PaymentRecord, error) {
	var recs []model.PaymentRecord
	err := s.db.WithContext(ctx).
		Order("paid_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, apperr.Upstream("failed to list payment records", err)
	}
	return recs, nil
}

func (s *gormPaymentStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.PaymentRecord{}).Count(&total).Error; err != nil {
		return 0, apperr.Upstream("failed to count payment records", err)
	}
	return total, nil
}

func (s *gormPaymentStore) Totals(ctx context.Context) (FundingTotals, error) {
	var t FundingTotals
	err := s.db.WithContext(ctx).
		Model(&model.PaymentRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS total_donations").
		Scan(&t).Error
	if err != nil {
		return FundingTotals{}, apperr.Upstream("failed to aggregate funding totals", err)
	}
	return t, nil
}
