// Package booking implements the server side of the booking endpoints.
//
// Every amount comes from the catalog or from the processor's own record of
// an intent; nothing the client sends is trusted for pricing or for payment
// status. Notification failures are reported on the manual contract path but
// only logged after a verified payment, so a successful charge is never
// reported as failed.
package booking
