package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
)

// MidtransGateway is the alternate provider, selected with
// PAYMENT_GATEWAY=midtrans. The session reference is the order id we mint at
// checkout. Midtrans' status API does not echo the payer's email back, so
// reconciliations through this gateway fall back to the anonymous display
// name unless the payer has a donor record under another match.
type MidtransGateway struct {
	snapClient snap.Client
	coreClient coreapi.Client
}

func NewMidtransGateway(serverKey string) *MidtransGateway {
	g := &MidtransGateway{}
	g.snapClient.New(serverKey, midtrans.Sandbox)
	g.coreClient.New(serverKey, midtrans.Sandbox)
	return g
}

func (g *MidtransGateway) Name() string { return "midtrans" }

func (g *MidtransGateway) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutSession, error) {
	orderID := fmt.Sprintf("VITALFLOW-%d", time.Now().UnixNano())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: in.Amount,
		},
	}
	if in.DonorName != "" || in.DonorEmail != "" {
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: in.DonorName,
			Email: in.DonorEmail,
		}
	}

	resp, err := g.snapClient.CreateTransaction(req)
	if err != nil {
		return nil, apperr.Upstream("failed to create checkout session", err)
	}
	return &CheckoutSession{SessionID: orderID, RedirectURL: resp.RedirectURL}, nil
}

// grossAmountToMinor converts Midtrans' major-unit decimal string ("10000.01")
// to minor units. Rounded, not truncated: the float for .01 sits just below
// the exact value and plain truncation would drop a minor unit.
func grossAmountToMinor(gross string) int64 {
	f, err := strconv.ParseFloat(gross, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}

func (g *MidtransGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	res, err := g.coreClient.CheckTransaction(sessionID)
	if err != nil {
		return nil, apperr.Upstream("failed to retrieve transaction status", err)
	}

	status := "unpaid"
	switch res.TransactionStatus {
	case "capture", "settlement":
		status = PaymentStatusPaid
	}

	amountMinor := grossAmountToMinor(res.GrossAmount)

	currency := res.Currency
	if currency == "" {
		currency = "IDR"
	}

	return &SessionStatus{
		PaymentStatus: status,
		AmountMinor:   amountMinor,
		Currency:      currency,
		TransactionID: res.TransactionID,
	}, nil
}
