package stripe

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"everafter/internal/domain"
)

// ErrBadClientSecret is returned by Mount for secrets that do not name an intent.
var ErrBadClientSecret = errors.New("malformed client secret")

// Element implements domain.PaymentElement against the Stripe API using a
// publishable key.
type Element struct {
	api       *client.API
	method    string
	returnURL string

	mu       sync.Mutex
	intentID string
	secret   string
}

var _ domain.PaymentElement = (*Element)(nil)

// NewElement returns an unmounted element that will pay with paymentMethod.
func NewElement(publishableKey, paymentMethod, returnURL string, backends *stripe.Backends) *Element {
	return &Element{
		api:       client.New(publishableKey, backends),
		method:    strings.TrimSpace(paymentMethod),
		returnURL: returnURL,
	}
}

// IntentID extracts the payment intent id from a client secret of the form
// "<id>_secret_<token>".
func IntentID(clientSecret string) (string, error) {
	id, _, ok := strings.Cut(clientSecret, "_secret_")
	if !ok || !strings.HasPrefix(id, "pi_") {
		return "", ErrBadClientSecret
	}
	return id, nil
}

// Mount binds the element to the intent and checks that it is reachable.
func (e *Element) Mount(ctx context.Context, clientSecret string) error {
	id, err := IntentID(clientSecret)
	if err != nil {
		return domain.Validationf(err, "Could not load the payment form.")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExtra("client_secret", clientSecret)
	if _, err := e.api.PaymentIntents.Get(id, params); err != nil {
		return domain.Upstream("Could not load the payment form.", err)
	}

	e.mu.Lock()
	e.intentID, e.secret = id, clientSecret
	e.mu.Unlock()
	return nil
}

// Submit validates the collected payment details without charging.
func (e *Element) Submit(context.Context) error {
	if _, _, ok := e.bound(); !ok {
		return domain.ErrNoSession
	}
	switch {
	case e.method == "":
		return domain.Validation("Please enter your payment details.")
	case !strings.HasPrefix(e.method, "pm_"):
		return domain.Validation("Your payment details are incomplete.")
	}
	return nil
}

// Confirm confirms the mounted intent. Card errors come back as
// ErrPaymentDeclined carrying the processor's customer-facing message.
func (e *Element) Confirm(ctx context.Context) (domain.PaymentIntent, error) {
	id, secret, ok := e.bound()
	if !ok {
		return domain.PaymentIntent{}, domain.ErrNoSession
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(e.method),
	}
	if e.returnURL != "" {
		params.ReturnURL = stripe.String(e.returnURL)
	}
	params.Context = ctx
	params.AddExtra("client_secret", secret)

	pi, err := e.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Type == stripe.ErrorTypeCard {
			return domain.PaymentIntent{}, domain.Validationf(domain.ErrPaymentDeclined, "%s", se.Msg)
		}
		return domain.PaymentIntent{}, domain.Upstream("Payment failed. Please try again.", err)
	}
	return fromStripe(pi), nil
}

// Unmount drops the intent binding.
func (e *Element) Unmount() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intentID, e.secret = "", ""
}

func (e *Element) bound() (id, secret string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.intentID, e.secret, e.intentID != ""
}
