package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error by who can correct it.
type Kind int

const (
	// KindUnknown is anything that was not classified at its call site.
	KindUnknown Kind = iota
	// KindValidation is a missing field or unknown package: user-correctable.
	KindValidation
	// KindConfiguration is missing processor or mail credentials:
	// operator-correctable.
	KindConfiguration
	// KindUpstream is a failure of the payment processor or the mail relay.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error carries a Kind, a user-safe Message and the underlying cause.
// Error() returns only Message; the cause is for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a KindValidation error with a user-facing message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Validationf wraps cause as a KindValidation error.
func Validationf(cause error, format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Configuration returns a KindConfiguration error.
func Configuration(msg string) error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// Upstream wraps cause as a KindUpstream error with a user-safe message.
func Upstream(msg string, cause error) error {
	return &Error{Kind: KindUpstream, Message: msg, Err: cause}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

var (
	// ErrUnknownPackage is returned for package ids not present in the catalog.
	ErrUnknownPackage = errors.New("unknown package")

	// ErrSignatureMissing means the signature surface is still blank.
	ErrSignatureMissing = errors.New("signature missing")

	// ErrPaymentNotSucceeded means the processor does not report the intent
	// as succeeded, whatever the client claims.
	ErrPaymentNotSucceeded = errors.New("payment was not successful")

	// ErrPaymentDeclined is returned when the processor rejects a confirm.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrBusy is returned while another request for the same session is in flight.
	ErrBusy = errors.New("request already in flight")

	// ErrNoSession is returned when no payment session is active.
	ErrNoSession = errors.New("no active payment session")

	// ErrAbandoned is returned when a response arrives for a checkout the user
	// already cancelled; the result is dropped.
	ErrAbandoned = errors.New("checkout abandoned")

	// ErrRetry is the generic "please try again" outcome of a manual
	// contract submission.
	ErrRetry = errors.New("failed to submit contract, please try again")
)
