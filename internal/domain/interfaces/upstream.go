package interfaces

import (
	"context"

	domaintypes "everafter/internal/domain/types"
)

// PaymentProcessor is the server's view of the payment processor. It holds
// the secret key and is never reachable from the client.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, params domaintypes.PaymentIntentParams) (domaintypes.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string) (domaintypes.PaymentIntent, error)
}

// Mailer hands a finished message to the mail relay.
type Mailer interface {
	Send(ctx context.Context, msg domaintypes.MailMessage) error
}
