package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/constants"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
)

// mockRequestStore keeps the ledger in a map. AcceptPending holds the lock
// across check and write, modelling the storage layer's atomic conditional
// update.
type mockRequestStore struct {
	mu       sync.Mutex
	Requests map[uuid.UUID]*model.DonationRequest

	FailWith error // when set, every call returns this
}

func newMockRequestStore() *mockRequestStore {
	return &mockRequestStore{Requests: make(map[uuid.UUID]*model.DonationRequest)}
}

func (m *mockRequestStore) Insert(ctx context.Context, req *model.DonationRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	if req.RequestID == uuid.Nil {
		req.RequestID = uuid.New()
	}
	cp := *req
	m.Requests[req.RequestID] = &cp
	return nil
}

func (m *mockRequestStore) FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	req, ok := m.Requests[id]
	if !ok {
		return nil, apperr.NotFound("request not found")
	}
	cp := *req
	return &cp, nil
}

func (m *mockRequestStore) AcceptPending(ctx context.Context, id uuid.UUID, donorEmail, donorName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	req, ok := m.Requests[id]
	if !ok {
		return false, nil
	}
	if req.DonationStatus != constants.DonationPending || req.RequesterEmail == donorEmail {
		return false, nil
	}
	req.DonationStatus = constants.DonationInProgress
	req.DonorEmail = &donorEmail
	req.DonorName = &donorName
	return true, nil
}

func (m *mockRequestStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	req, ok := m.Requests[id]
	if !ok {
		return 0, nil
	}
	req.DonationStatus = status
	return 1, nil
}

func (m *mockRequestStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	if _, ok := m.Requests[id]; !ok {
		return 0, nil
	}
	delete(m.Requests, id)
	return 1, nil
}

func (m *mockRequestStore) List(ctx context.Context, f Filter, limit, offset int) ([]model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	matched := m.filtered(f)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *mockRequestStore) Count(ctx context.Context, f Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return int64(len(m.filtered(f))), nil
}

// filtered returns matching requests newest first, as the SQL store sorts.
func (m *mockRequestStore) filtered(f Filter) []model.DonationRequest {
	var out []model.DonationRequest
	for _, req := range m.Requests {
		if f.RequesterEmail != "" && req.RequesterEmail != f.RequesterEmail {
			continue
		}
		if f.BloodGroup != "" && req.BloodGroup != f.BloodGroup {
			continue
		}
		if f.District != "" && req.RecipientDistrict != f.District {
			continue
		}
		if f.Upazila != "" && req.RecipientUpazila != f.Upazila {
			continue
		}
		if f.Status != "" && req.DonationStatus != f.Status {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// mockNameResolver maps emails to display names.
type mockNameResolver struct {
	Names map[string]string
}

func (m *mockNameResolver) DisplayName(ctx context.Context, email string) string {
	return m.Names[email]
}
