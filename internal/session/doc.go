// Package session holds the transient booking state of one customer session.
//
// A Session owns a BookingForm per package and a single signature surface.
// Nothing here is shared between sessions and nothing is persisted: a form
// lives until it is submitted successfully or the session is dropped.
package session
