// Package notify builds and sends the booking notification emails.
//
// Both the manual contract submission and the paid booking produce the same
// shaped message: a title, an optional payment badge, a list of labelled
// values, the signature image and a timestamp footer. Build renders that
// shape once; ContractSubmitted and PaymentReceived only differ in the rows
// they pass. Every message goes to the operator inbox and, when known, the
// customer.
package notify
