package interfaces

import (
	"context"

	domaintypes "everafter/internal/domain/types"
)

// BookingAPI is how a client session talks to the booking server.
type BookingAPI interface {
	ListPackages(ctx context.Context) ([]domaintypes.Package, error)
	CreatePaymentIntent(ctx context.Context, req domaintypes.IntentRequest) (domaintypes.IntentResponse, error)
	ConfirmPayment(ctx context.Context, req domaintypes.ConfirmRequest) (domaintypes.ConfirmResponse, error)
	SubmitContract(ctx context.Context, sub domaintypes.ContractSubmission) error
}

// PaymentElement is the payment collection widget mounted for one intent.
type PaymentElement interface {
	// Mount binds the widget to the intent identified by clientSecret.
	Mount(ctx context.Context, clientSecret string) error
	// Submit validates the collected payment details without charging.
	Submit(ctx context.Context) error
	// Confirm asks the processor to confirm the mounted intent.
	Confirm(ctx context.Context) (domaintypes.PaymentIntent, error)
	// Unmount releases the intent binding.
	Unmount()
}

// SignaturePad is the part of the signature surface the flows depend on.
type SignaturePad interface {
	HasSignature() bool
	Export() (domaintypes.SignatureArtifact, error)
	Reset()
}
