// Package checkout sequences a paid booking for one customer session.
//
// The flow is an explicit state machine:
//
//	Idle -> IntentCreated -> Confirming -> Succeeded
//	                  ^            |
//	                  +-- Failed <-+
//
// Begin validates the form and signature locally, asks the server for an
// intent priced from its catalog and mounts the payment element. Submit
// validates the element, confirms with the processor and, once the processor
// reports success, sends the signature snapshot to the confirmation endpoint.
// A decline passes through Failed back to IntentCreated with the same intent,
// so a retry never creates a second one.
//
// Each call is awaited; a second call while one is in flight gets ErrBusy.
// Cancel drops the session without contacting the server, and a response
// that arrives for a cancelled checkout is discarded with ErrAbandoned.
package checkout
