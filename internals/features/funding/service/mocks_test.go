package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/model"
)

// mockPaymentStore enforces the transaction_id uniqueness the SQL index
// provides, with the check and write under one lock.
type mockPaymentStore struct {
	mu       sync.Mutex
	Payments map[string]*model.PaymentRecord // keyed by transaction_id

	FailWith error // when set, every call returns this
}

func newMockPaymentStore() *mockPaymentStore {
	return &mockPaymentStore{Payments: make(map[string]*model.PaymentRecord)}
}

func (m *mockPaymentStore) Insert(ctx context.Context, rec *model.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	if _, ok := m.Payments[rec.TransactionID]; ok {
		return apperr.AlreadyExists("payment already recorded")
	}
	if rec.PaymentID == uuid.Nil {
		rec.PaymentID = uuid.New()
	}
	cp := *rec
	m.Payments[rec.TransactionID] = &cp
	return nil
}

func (m *mockPaymentStore) FindByTransactionID(ctx context.Context, txID string) (*model.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	rec, ok := m.Payments[txID]
	if !ok {
		return nil, apperr.NotFound("payment record not found")
	}
	cp := *rec
	return &cp, nil
}

func (m *mockPaymentStore) List(ctx context.Context, limit, offset int) ([]model.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []model.PaymentRecord
	for _, rec := range m.Payments {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PaidAt.After(out[j].PaidAt)
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

func (m *mockPaymentStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return int64(len(m.Payments)), nil
}

func (m *mockPaymentStore) Totals(ctx context.Context) (FundingTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return FundingTotals{}, m.FailWith
	}
	var t FundingTotals
	for _, rec := range m.Payments {
		t.TotalAmount += rec.Amount
		t.TotalDonations++
	}
	return t, nil
}

// mockGateway serves canned sessions keyed by session id.
type mockGateway struct {
	Sessions map[string]*SessionStatus

	CreateErr   error
	RetrieveErr error
	Created     []CheckoutInput
}

func (m *mockGateway) Name() string { return "mock" }

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutSession, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, in)
	return &CheckoutSession{
		SessionID:   "cs_test_1",
		RedirectURL: "https://checkout.example/cs_test_1",
	}, nil
}

func (m *mockGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	if m.RetrieveErr != nil {
		return nil, m.RetrieveErr
	}
	st, ok := m.Sessions[sessionID]
	if !ok {
		return nil, apperr.NotFound("session not found")
	}
	cp := *st
	return &cp, nil
}

// mockDirectory maps emails to display names.
type mockDirectory struct {
	Names map[string]string
}

func (m *mockDirectory) DisplayName(ctx context.Context, email string) string {
	return m.Names[email]
}
