package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
)

func paidSession(txID string) *SessionStatus {
	return &SessionStatus{
		PaymentStatus: PaymentStatusPaid,
		AmountMinor:   2550,
		Currency:      "usd",
		PayerEmail:    "payer@test.com",
		PayerName:     "Payer Name",
		TransactionID: txID,
	}
}

func TestReconciler_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("Given a paid session When Reconcile Then one record with the amount in major units", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": paidSession("pi_1")}}
		rec, err := NewReconciler(gw, store, &mockDirectory{}).Reconcile(ctx, "cs_1")
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}
		if rec.Amount != 25.50 {
			t.Errorf("amount = %v, want 25.50", rec.Amount)
		}
		if rec.TransactionID != "pi_1" {
			t.Errorf("transaction id = %q, want pi_1", rec.TransactionID)
		}
		if rec.PaymentStatus != PaymentStatusPaid {
			t.Errorf("status = %q, want paid", rec.PaymentStatus)
		}
		if rec.Gateway != "mock" {
			t.Errorf("gateway = %q, want mock", rec.Gateway)
		}
		if len(store.Payments) != 1 {
			t.Errorf("expected 1 record, got %d", len(store.Payments))
		}
	})

	t.Run("Given the same session twice When Reconcile Then the second call is AlreadyExists with one record", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": paidSession("pi_1")}}
		r := NewReconciler(gw, store, &mockDirectory{})

		if _, err := r.Reconcile(ctx, "cs_1"); err != nil {
			t.Fatalf("first Reconcile failed: %v", err)
		}
		_, err := r.Reconcile(ctx, "cs_1")
		if !apperr.IsKind(err, apperr.KindAlreadyExists) {
			t.Fatalf("expected AlreadyExists, got %v", err)
		}
		if len(store.Payments) != 1 {
			t.Errorf("expected 1 record, got %d", len(store.Payments))
		}
	})

	t.Run("Given an unpaid session When Reconcile Then Conflict and no write", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{
			"cs_open": {PaymentStatus: "unpaid", TransactionID: "pi_x"},
		}}
		_, err := NewReconciler(gw, store, &mockDirectory{}).Reconcile(ctx, "cs_open")
		if !apperr.IsKind(err, apperr.KindConflict) {
			t.Fatalf("expected Conflict, got %v", err)
		}
		if len(store.Payments) != 0 {
			t.Errorf("expected no write, got %d records", len(store.Payments))
		}
	})

	t.Run("Given a paid session without a transaction id When Reconcile Then Upstream and no write", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": paidSession("")}}
		_, err := NewReconciler(gw, store, &mockDirectory{}).Reconcile(ctx, "cs_1")
		if !apperr.IsKind(err, apperr.KindUpstream) {
			t.Fatalf("expected Upstream, got %v", err)
		}
		if len(store.Payments) != 0 {
			t.Errorf("expected no write, got %d records", len(store.Payments))
		}
	})

	t.Run("Given a provider failure When Reconcile Then the error surfaces with no write", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{RetrieveErr: apperr.Upstream("provider unavailable", nil)}
		_, err := NewReconciler(gw, store, &mockDirectory{}).Reconcile(ctx, "cs_1")
		if !apperr.IsKind(err, apperr.KindUpstream) {
			t.Fatalf("expected Upstream, got %v", err)
		}
		if len(store.Payments) != 0 {
			t.Errorf("expected no write, got %d records", len(store.Payments))
		}
	})

	t.Run("Given an empty session id When Reconcile Then InvalidArgument", func(t *testing.T) {
		gw := &mockGateway{}
		_, err := NewReconciler(gw, newMockPaymentStore(), &mockDirectory{}).Reconcile(ctx, "")
		if !apperr.IsKind(err, apperr.KindInvalidArgument) {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("Given a registered payer When Reconcile Then the directory name wins over the provider name", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": paidSession("pi_1")}}
		names := &mockDirectory{Names: map[string]string{"payer@test.com": "Directory Name"}}
		rec, err := NewReconciler(gw, store, names).Reconcile(ctx, "cs_1")
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}
		if rec.DonorName != "Directory Name" {
			t.Errorf("donor name = %q, want directory name", rec.DonorName)
		}
	})

	t.Run("Given no directory match and no provider name When Reconcile Then Anonymous", func(t *testing.T) {
		store := newMockPaymentStore()
		st := paidSession("pi_1")
		st.PayerName = ""
		st.PayerEmail = "unknown@test.com"
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": st}}
		rec, err := NewReconciler(gw, store, &mockDirectory{}).Reconcile(ctx, "cs_1")
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}
		if rec.DonorName != "Anonymous" {
			t.Errorf("donor name = %q, want Anonymous", rec.DonorName)
		}
	})

	t.Run("Given N concurrent reconciles of one session When paid Then exactly one record exists", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{"cs_1": paidSession("pi_1")}}
		r := NewReconciler(gw, store, &mockDirectory{})

		const n = 12
		var wg sync.WaitGroup
		results := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = r.Reconcile(context.Background(), "cs_1")
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range results {
			switch {
			case err == nil:
				wins++
			case apperr.IsKind(err, apperr.KindAlreadyExists):
			default:
				t.Fatalf("unexpected error kind: %v", err)
			}
		}
		if wins != 1 {
			t.Errorf("expected exactly 1 successful reconcile, got %d", wins)
		}
		if len(store.Payments) != 1 {
			t.Errorf("expected 1 record, got %d", len(store.Payments))
		}
	})
}

func TestReconciler_InitiateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Given a positive amount When InitiateCheckout Then a session with a redirect URL", func(t *testing.T) {
		gw := &mockGateway{}
		sess, err := NewReconciler(gw, newMockPaymentStore(), &mockDirectory{}).
			InitiateCheckout(ctx, 50, "Payer", "payer@test.com", "https://app/success", "https://app/cancel")
		if err != nil {
			t.Fatalf("InitiateCheckout failed: %v", err)
		}
		if sess.RedirectURL == "" {
			t.Errorf("missing redirect URL")
		}
		if len(gw.Created) != 1 || gw.Created[0].Amount != 50 {
			t.Errorf("gateway not called with the requested amount")
		}
	})

	t.Run("Given a non-positive amount When InitiateCheckout Then InvalidArgument without touching the gateway", func(t *testing.T) {
		gw := &mockGateway{}
		r := NewReconciler(gw, newMockPaymentStore(), &mockDirectory{})
		for _, amount := range []int64{0, -5} {
			_, err := r.InitiateCheckout(ctx, amount, "", "", "", "")
			if !apperr.IsKind(err, apperr.KindInvalidArgument) {
				t.Errorf("amount %d: expected InvalidArgument, got %v", amount, err)
			}
		}
		if len(gw.Created) != 0 {
			t.Errorf("gateway called despite invalid amount")
		}
	})
}

func TestReconciler_Totals(t *testing.T) {
	ctx := context.Background()

	t.Run("Given an empty ledger When Totals Then zeros", func(t *testing.T) {
		r := NewReconciler(&mockGateway{}, newMockPaymentStore(), &mockDirectory{})
		totals, err := r.Totals(ctx)
		if err != nil {
			t.Fatalf("Totals failed: %v", err)
		}
		if totals.TotalAmount != 0 || totals.TotalDonations != 0 {
			t.Errorf("expected zeros, got %+v", totals)
		}
	})

	t.Run("Given reconciled payments When Totals Then sum and count agree with the ledger", func(t *testing.T) {
		store := newMockPaymentStore()
		gw := &mockGateway{Sessions: map[string]*SessionStatus{
			"cs_1": paidSession("pi_1"),
			"cs_2": paidSession("pi_2"),
		}}
		r := NewReconciler(gw, store, &mockDirectory{})
		for _, sid := range []string{"cs_1", "cs_2"} {
			if _, err := r.Reconcile(ctx, sid); err != nil {
				t.Fatalf("Reconcile(%s) failed: %v", sid, err)
			}
		}

		totals, err := r.Totals(ctx)
		if err != nil {
			t.Fatalf("Totals failed: %v", err)
		}
		if totals.TotalDonations != 2 {
			t.Errorf("count = %d, want 2", totals.TotalDonations)
		}
		if totals.TotalAmount != 51.00 {
			t.Errorf("sum = %v, want 51.00", totals.TotalAmount)
		}
	})
}
