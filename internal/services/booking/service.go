package booking

import (
	"log/slog"

	"everafter/internal/domain"
	"everafter/internal/metrics"
)

// Service implements domain.BookingService.
type Service struct {
	catalog   domain.Catalog
	processor domain.PaymentProcessor
	notifier  domain.Notifier
	metrics   *metrics.Metrics
	log       *slog.Logger
}

var _ domain.BookingService = (*Service)(nil)

// New constructs the service. processor may be nil when no secret key is
// configured; the payment endpoints then fail with a configuration error.
func New(
	catalog domain.Catalog,
	processor domain.PaymentProcessor,
	notifier domain.Notifier,
	m *metrics.Metrics,
	log *slog.Logger,
) *Service {
	if m == nil {
		m = metrics.New()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		catalog:   catalog,
		processor: processor,
		notifier:  notifier,
		metrics:   m,
		log:       log,
	}
}

// Packages lists the catalog in display order.
func (s *Service) Packages() []domain.Package {
	return s.catalog.List()
}

func (s *Service) requireProcessor() error {
	if s.processor == nil {
		return domain.Configuration("Stripe secret key is not configured.")
	}
	return nil
}
