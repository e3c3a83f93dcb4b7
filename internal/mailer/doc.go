// Package mailer delivers finished notification messages over SMTP.
//
// Port 465 uses implicit TLS; any other port upgrades with STARTTLS when the
// relay offers it. A mailer without host or credentials is still
// constructible: Send then fails with a configuration error so the endpoint
// that needed mail reports it instead of silently dropping the message.
package mailer
