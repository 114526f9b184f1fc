package service

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
)

const stripeCurrency = "usd"

// InitStripe sets the API key for the process. Call once from main.
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

// StripeGateway drives Stripe Checkout sessions. This is the default gateway;
// its session contract (payment_status, amount_total, customer_email,
// payment_intent) is the reconciliation protocol.
type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

func (g *StripeGateway) Name() string { return "stripe" }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(stripeCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("VitalFlow Donation"),
					},
					UnitAmount: stripe.Int64(in.Amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	if in.DonorEmail != "" {
		params.CustomerEmail = stripe.String(in.DonorEmail)
	}
	// carried through the session so reconciliation can recover them
	params.AddMetadata("donor_name", in.DonorName)
	params.AddMetadata("donor_email", in.DonorEmail)

	s, err := session.New(params)
	if err != nil {
		return nil, apperr.Upstream("failed to create checkout session", err)
	}
	return &CheckoutSession{SessionID: s.ID, RedirectURL: s.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, apperr.Upstream("failed to retrieve checkout session", err)
	}

	st := &SessionStatus{
		PaymentStatus: string(s.PaymentStatus),
		AmountMinor:   s.AmountTotal,
		Currency:      string(s.Currency),
		PayerEmail:    s.CustomerEmail,
		PayerName:     s.Metadata["donor_name"],
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		st.PayerEmail = s.CustomerDetails.Email
	}
	if st.PayerEmail == "" {
		st.PayerEmail = s.Metadata["donor_email"]
	}
	if s.PaymentIntent != nil {
		st.TransactionID = s.PaymentIntent.ID
	}
	return st, nil
}
