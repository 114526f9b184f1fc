package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/model"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
)

const anonymousDonorName = "Anonymous"

// NameResolver resolves a display name for a verified email, best effort.
// The donor directory satisfies this.
type NameResolver interface {
	DisplayName(ctx context.Context, email string) string
}

// Reconciler turns one external checkout outcome into at most one
// PaymentRecord. It is the sole writer of the funding ledger.
type Reconciler struct {
	Gateway  Gateway
	Payments PaymentStore
	Names    NameResolver
}

func NewReconciler(gateway Gateway, payments PaymentStore, names NameResolver) *Reconciler {
	return &Reconciler{Gateway: gateway, Payments: payments, Names: names}
}

// InitiateCheckout starts a provider checkout session for a single donation
// line item and returns the redirect URL.
func (r *Reconciler) InitiateCheckout(ctx context.Context, amount int64, donorName, donorEmail, successURL, cancelURL string) (*CheckoutSession, error) {
	if amount <= 0 {
		return nil, apperr.InvalidArgument("amount must be a positive number")
	}
	return r.Gateway.CreateCheckoutSession(ctx, CheckoutInput{
		Amount:     amount,
		DonorName:  donorName,
		DonorEmail: donorEmail,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
}

// Reconcile resolves the session's authoritative state and records the payment
// exactly once. Retries and duplicate notifications come back AlreadyExists;
// the unique transaction_id constraint catches the concurrent case the
// existence check cannot see. A provider failure surfaces as Upstream with no
// write, so the caller may retry.
func (r *Reconciler) Reconcile(ctx context.Context, sessionID string) (*model.PaymentRecord, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("missing session id")
	}

	st, err := r.Gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if st.PaymentStatus != PaymentStatusPaid {
		// explicit signal instead of the silent no-op the old server had
		return nil, apperr.Conflict("payment not completed")
	}
	if st.TransactionID == "" {
		return nil, apperr.Upstream("session has no transaction identifier", nil)
	}

	if existing, err := r.Payments.FindByTransactionID(ctx, st.TransactionID); err == nil && existing != nil {
		return nil, apperr.AlreadyExists("payment already recorded")
	} else if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	donorName := r.Names.DisplayName(ctx, st.PayerEmail)
	if donorName == "" {
		donorName = st.PayerName
	}
	if donorName == "" {
		donorName = anonymousDonorName
	}

	snapshot, _ := json.Marshal(st)
	rec := &model.PaymentRecord{
		TransactionID: st.TransactionID,
		Amount:        float64(st.AmountMinor) / 100,
		Currency:      st.Currency,
		DonorEmail:    st.PayerEmail,
		DonorName:     donorName,
		PaymentStatus: PaymentStatusPaid,
		Gateway:       r.Gateway.Name(),
		Metadata:      snapshot,
		PaidAt:        time.Now(),
	}

	if err := r.Payments.Insert(ctx, rec); err != nil {
		return nil, err
	}

	logger.Log.Info("payment reconciled",
		zap.String("transaction_id", rec.TransactionID),
		zap.Float64("amount", rec.Amount),
		zap.String("gateway", rec.Gateway),
	)
	return rec, nil
}

// ListPayments pages through the funding ledger, newest first.
func (r *Reconciler) ListPayments(ctx context.Context, limit, offset int) ([]model.PaymentRecord, int64, error) {
	recs, err := r.Payments.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.Payments.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

// Totals aggregates the whole ledger; {0, 0} on an empty one.
func (r *Reconciler) Totals(ctx context.Context) (FundingTotals, error) {
	return r.Payments.Totals(ctx)
}
