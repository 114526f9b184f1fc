package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/model"
)

// mockDonorStore keyed by email, mirroring the unique index on donor_email.
type mockDonorStore struct {
	mu     sync.Mutex
	Donors map[string]*model.Donor

	FailWith error // when set, every call returns this
}

func newMockDonorStore() *mockDonorStore {
	return &mockDonorStore{Donors: make(map[string]*model.Donor)}
}

func (m *mockDonorStore) Insert(ctx context.Context, donor *model.Donor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	if _, ok := m.Donors[donor.DonorEmail]; ok {
		return apperr.AlreadyExists("donor already registered")
	}
	if donor.DonorID == uuid.Nil {
		donor.DonorID = uuid.New()
	}
	cp := *donor
	m.Donors[donor.DonorEmail] = &cp
	return nil
}

func (m *mockDonorStore) FindByEmail(ctx context.Context, email string) (*model.Donor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	donor, ok := m.Donors[email]
	if !ok {
		return nil, apperr.NotFound("donor not found")
	}
	cp := *donor
	return &cp, nil
}

func (m *mockDonorStore) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	donor, ok := m.Donors[email]
	if !ok {
		return 0, nil
	}
	for col, val := range fields {
		s, _ := val.(string)
		switch col {
		case "status":
			donor.Status = s
		case "role":
			donor.Role = s
		case "donor_name":
			donor.DonorName = s
		case "blood_group":
			donor.BloodGroup = s
		case "district":
			donor.District = s
		case "upazila":
			donor.Upazila = s
		case "photo_url":
			donor.PhotoURL = s
		}
	}
	return 1, nil
}

func (m *mockDonorStore) List(ctx context.Context, limit, offset int) ([]model.Donor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []model.Donor
	for _, donor := range m.Donors {
		out = append(out, *donor)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockDonorStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return int64(len(m.Donors)), nil
}
