// Package main runs the everafter booking API.
//
// HTTP API
//
//	GET /api/packages
//	    The catalog, with display prices and rendered descriptions.
//
//	POST /api/stripe/create-payment-intent
//	    Create a retainer payment intent priced from the catalog. The
//	    request names a package; it never carries an amount.
//
//	POST /api/stripe/payment
//	    Confirm a succeeded intent and send the booking notification.
//
//	POST /api/contract/submit
//	    Email a signed contract without payment.
//
//	GET /health, GET /metrics
//	    Liveness and Prometheus metrics.
//
// Configuration comes from an optional config file, then the environment
// (STRIPE_SECRET_KEY, EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS,
// EMAIL_FROM and EVERAFTER_*), then flags. The server starts without Stripe
// or SMTP credentials; the endpoints that need them report a configuration
// error until they are set.
package main
