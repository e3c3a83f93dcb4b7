// Package server exposes the booking service over HTTP.
//
// Routes
//
//	POST /api/stripe/create-payment-intent  {packageId, customerEmail?, customerName?}
//	POST /api/stripe/payment                {paymentIntentId, customerName?, customerEmail?, weddingDate?, signature?}
//	POST /api/contract/submit               {packageId, packageName, fullName, email, weddingDate, signature}
//	GET  /api/packages
//	GET  /health
//	GET  /metrics
//
// Errors are returned as {"error": "..."} with 400 for validation problems
// and 500 for configuration or upstream failures. Unknown request fields are
// ignored, so a client-supplied amount has no effect.
package server
