package interfaces

import (
	"context"

	domaintypes "everafter/internal/domain/types"
)

// Catalog is the server-trusted package table.
type Catalog interface {
	Lookup(id domaintypes.PackageID) (domaintypes.Package, error)
	List() []domaintypes.Package
}

// Notifier builds and dispatches the booking notification emails.
type Notifier interface {
	ContractSubmitted(ctx context.Context, pkg domaintypes.Package, sub domaintypes.ContractSubmission) error
	PaymentReceived(
		ctx context.Context,
		pkg domaintypes.Package,
		intent domaintypes.PaymentIntent,
		req domaintypes.ConfirmRequest,
	) error
}

// BookingService implements the three server endpoints.
type BookingService interface {
	CreatePaymentIntent(ctx context.Context, req domaintypes.IntentRequest) (domaintypes.IntentResponse, error)
	ConfirmPayment(ctx context.Context, req domaintypes.ConfirmRequest) (domaintypes.ConfirmResponse, error)
	SubmitContract(ctx context.Context, sub domaintypes.ContractSubmission) error
	Packages() []domaintypes.Package
}
