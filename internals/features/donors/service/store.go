package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/model"
)

// DonorStore is the persistence surface the directory and the access guard
// run against. The GORM implementation below is the only writer of the donors
// table.
type DonorStore interface {
	Insert(ctx context.Context, donor *model.Donor) error
	FindByEmail(ctx context.Context, email string) (*model.Donor, error)
	UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error)
	List(ctx context.Context, limit, offset int) ([]model.Donor, error)
	Count(ctx context.Context) (int64, error)
}

type gormDonorStore struct {
	db *gorm.DB
}

func NewDonorStore(db *gorm.DB) DonorStore {
	return &gormDonorStore{db: db}
}

func (s *gormDonorStore) Insert(ctx context.Context, donor *model.Donor) error {
	if err := s.db.WithContext(ctx).Create(donor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.AlreadyExists("donor already registered")
		}
		return apperr.Upstream("failed to save donor", err)
	}
	return nil
}

func (s *gormDonorStore) FindByEmail(ctx context.Context, email string) (*model.Donor, error) {
	var donor model.Donor
	err := s.db.WithContext(ctx).Where("donor_email = ?", email).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("donor not found")
		}
		return nil, apperr.Upstream("failed to load donor", err)
	}
	return &donor, nil
}

func (s *gormDonorStore) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Donor{}).
		Where("donor_email = ?", email).
		Updates(fields)
	if res.Error != nil {
		return 0, apperr.Upstream("failed to update donor", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *gormDonorStore) List(ctx context.Context, limit, offset int) ([]model.Donor, error) {
	var donors []model.Donor
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donors).Error
	if err != nil {
		return nil, apperr.Upstream("failed to list donors", err)
	}
	return donors, nil
}

func (s *gormDonorStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Donor{}).Count(&total).Error; err != nil {
		return 0, apperr.Upstream("failed to count donors", err)
	}
	return total, nil
}
