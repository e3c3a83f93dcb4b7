// Package client provides an HTTP implementation of the domain.BookingAPI
// interface used by the everafter CLI.
//
// Supported operations:
//   - Listing the package catalog.
//   - Creating a payment intent for a package retainer.
//   - Confirming a payment and triggering the booking notification.
//   - Submitting a signed contract for manual payment.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Error responses carry {"error": "..."}; a 4xx becomes a
// validation error with that message, anything else an upstream error.
package client
