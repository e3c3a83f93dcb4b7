// Package contract submits a signed contract for manual payment.
//
// Submission is single shot: the form and signature are checked locally, the
// payload is posted once, and any failure is reported as ErrRetry for the
// customer to try again. There is no automatic retry.
package contract
