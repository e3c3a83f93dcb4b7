// Package stripe adapts stripe-go to the booking domain.
//
// Processor is the server side: it holds the secret key, creates payment
// intents priced by the caller and re-reads them for verification.
//
// Element is the client side payment collection widget. It is bound to one
// intent through its client secret and confirms that intent with a
// publishable key and a payment method reference (for example the test
// tokens "pm_card_visa" or "pm_card_chargeDeclined"). It never sees the
// secret key.
package stripe
