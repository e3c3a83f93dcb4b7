package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"everafter/internal/domain"
)

// Processor implements domain.PaymentProcessor.
type Processor struct {
	api *client.API
}

var _ domain.PaymentProcessor = (*Processor)(nil)

// New returns a processor using secretKey. A nil backends uses the live
// Stripe API.
func New(secretKey string, backends *stripe.Backends) *Processor {
	return &Processor{api: client.New(secretKey, backends)}
}

// CreatePaymentIntent opens an intent with automatic payment methods.
func (p *Processor) CreatePaymentIntent(ctx context.Context, in domain.PaymentIntentParams) (domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(in.Amount)),
		Currency:    stripe.String(string(in.Currency)),
		Description: stripe.String(in.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if in.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(in.ReceiptEmail)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return fromStripe(pi), nil
}

// RetrievePaymentIntent reads the processor's current record of id.
func (p *Processor) RetrievePaymentIntent(ctx context.Context, id string) (domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("stripe retrieve payment intent %s: %w", id, err)
	}
	return fromStripe(pi), nil
}

func fromStripe(pi *stripe.PaymentIntent) domain.PaymentIntent {
	md := make(map[string]string, len(pi.Metadata))
	for k, v := range pi.Metadata {
		md[k] = v
	}
	return domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       domain.Cents(pi.Amount),
		Currency:     domain.Currency(pi.Currency),
		Status:       domain.PaymentIntentStatus(pi.Status),
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     md,
	}
}
