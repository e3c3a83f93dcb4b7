package types

// PaymentIntentStatus mirrors the processor's payment intent lifecycle.
type PaymentIntentStatus string

const (
	StatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	StatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	StatusRequiresAction        PaymentIntentStatus = "requires_action"
	StatusProcessing            PaymentIntentStatus = "processing"
	StatusSucceeded             PaymentIntentStatus = "succeeded"
	StatusCanceled              PaymentIntentStatus = "canceled"
)

// PaymentIntent is the processor-side view of one checkout attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       Cents
	Currency     Currency
	Status       PaymentIntentStatus
	ReceiptEmail string
	Metadata     map[string]string
}

// PaymentIntentParams is what the server asks the processor to create.
type PaymentIntentParams struct {
	Amount       Cents
	Currency     Currency
	Description  string
	ReceiptEmail string
	Metadata     map[string]string
}

// Metadata keys recorded on every intent.
const (
	MetaPackageID    = "packageId"
	MetaPackageName  = "packageName"
	MetaCustomerName = "customerName"
)

// PaymentSession is held by the checkout orchestrator for one attempt.
type PaymentSession struct {
	ClientSecret    string
	PaymentIntentID string
	PackageID       PackageID
	Amount          Cents
}

// IntentRequest is the create-intent wire payload. There is deliberately no
// amount field: the server prices from the catalog.
type IntentRequest struct {
	PackageID     PackageID `json:"packageId"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
}

// IntentResponse answers a successful create-intent call.
type IntentResponse struct {
	ClientSecret    string    `json:"clientSecret"`
	PaymentIntentID string    `json:"paymentIntentId"`
	PackageID       PackageID `json:"packageId"`
	Amount          Cents     `json:"amount"`
}

// ConfirmRequest is sent after the processor reported success to the client.
type ConfirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	WeddingDate     string `json:"weddingDate,omitempty"`
	Signature       string `json:"signature,omitempty"`
}

// ConfirmResponse answers a verified confirmation.
type ConfirmResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          Cents  `json:"amount"`
}
