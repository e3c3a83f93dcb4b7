package domain

import (
	interfaces "everafter/internal/domain/interfaces"
	types "everafter/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PackageID           = types.PackageID
	Cents               = types.Cents
	Currency            = types.Currency
	Package             = types.Package
	Field               = types.Field
	BookingForm         = types.BookingForm
	SignatureArtifact   = types.SignatureArtifact
	PaymentIntentStatus = types.PaymentIntentStatus
	PaymentIntent       = types.PaymentIntent
	PaymentIntentParams = types.PaymentIntentParams
	PaymentSession      = types.PaymentSession
	IntentRequest       = types.IntentRequest
	IntentResponse      = types.IntentResponse
	ConfirmRequest      = types.ConfirmRequest
	ConfirmResponse     = types.ConfirmResponse
	ContractSubmission  = types.ContractSubmission
	SubmitResponse      = types.SubmitResponse
	MailMessage         = types.MailMessage
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Catalog          = interfaces.Catalog
	PaymentProcessor = interfaces.PaymentProcessor
	Mailer           = interfaces.Mailer
	Notifier         = interfaces.Notifier
	BookingService   = interfaces.BookingService
	BookingAPI       = interfaces.BookingAPI
	PaymentElement   = interfaces.PaymentElement
	SignaturePad     = interfaces.SignaturePad
)

// Re-exported constants.
const (
	USD = types.USD

	FieldFullName    = types.FieldFullName
	FieldEmail       = types.FieldEmail
	FieldWeddingDate = types.FieldWeddingDate

	StatusRequiresPaymentMethod = types.StatusRequiresPaymentMethod
	StatusRequiresConfirmation  = types.StatusRequiresConfirmation
	StatusRequiresAction        = types.StatusRequiresAction
	StatusProcessing            = types.StatusProcessing
	StatusSucceeded             = types.StatusSucceeded
	StatusCanceled              = types.StatusCanceled

	MetaPackageID    = types.MetaPackageID
	MetaPackageName  = types.MetaPackageName
	MetaCustomerName = types.MetaCustomerName

	PNGDataURLPrefix = types.PNGDataURLPrefix
)
