package app

import (
	"log/slog"

	"everafter/internal/catalog"
	"everafter/internal/domain"
	"everafter/internal/mailer"
	"everafter/internal/metrics"
	"everafter/internal/processor/stripe"
	"everafter/internal/server"
	"everafter/internal/services/booking"
	"everafter/internal/services/notify"
)

// NewServer constructs the HTTP API from cfg.
func NewServer(cfg ServerConfig, log *slog.Logger) (*server.Server, error) {
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		c, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		cat = c
	}

	// A nil processor makes the payment endpoints report the missing key.
	var proc domain.PaymentProcessor
	if cfg.Stripe.SecretKey != "" {
		proc = stripe.New(cfg.Stripe.SecretKey, nil)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set; payment endpoints disabled")
	}

	mcfg := mailer.Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.User,
		Password: cfg.Email.Pass,
		From:     cfg.Email.From,
	}
	if !mcfg.Configured() {
		log.Warn("EMAIL_HOST, EMAIL_USER or EMAIL_PASS not set; notifications disabled")
	}
	mail := mailer.New(mcfg)

	n := notify.New(mail, notify.Config{
		From:          mcfg.Sender(),
		OperatorEmail: cfg.Operator(),
	}, log)

	m := metrics.New()
	svc := booking.New(cat, proc, n, m, log)

	return server.New(server.Config{
		Addr:         cfg.Addr,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, svc, cat, m, log), nil
}
