package booking

import (
	"context"
	"fmt"
	"strings"

	"everafter/internal/domain"
	"everafter/internal/metrics"
	"everafter/internal/signature"
)

// unknownPackageName labels intents whose metadata no longer resolves.
const unknownPackageName = "Wedding Photography Retainer"

// CreatePaymentIntent prices req.PackageID from the catalog and opens an
// intent for the retainer.
func (s *Service) CreatePaymentIntent(ctx context.Context, req domain.IntentRequest) (domain.IntentResponse, error) {
	pkg, err := s.catalog.Lookup(domain.PackageID(strings.TrimSpace(string(req.PackageID))))
	if err != nil {
		s.metrics.IntentsCreated.WithLabelValues("unknown", metrics.OutcomeRejected).Inc()
		return domain.IntentResponse{}, err
	}
	email := strings.TrimSpace(req.CustomerEmail)
	if email != "" {
		if err := domain.CheckEmail(email); err != nil {
			s.metrics.IntentsCreated.WithLabelValues(string(pkg.ID), metrics.OutcomeRejected).Inc()
			return domain.IntentResponse{}, err
		}
	}
	if err := s.requireProcessor(); err != nil {
		return domain.IntentResponse{}, err
	}

	name := strings.TrimSpace(req.CustomerName)
	params := domain.PaymentIntentParams{
		Amount:       pkg.Retainer,
		Currency:     domain.USD,
		Description:  fmt.Sprintf("%s - Wedding Photography Retainer", pkg.Name),
		ReceiptEmail: email,
		Metadata: map[string]string{
			domain.MetaPackageID:   string(pkg.ID),
			domain.MetaPackageName: pkg.Name,
		},
	}
	if name != "" {
		params.Metadata[domain.MetaCustomerName] = name
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, params)
	if err != nil {
		s.metrics.IntentsCreated.WithLabelValues(string(pkg.ID), metrics.OutcomeFailed).Inc()
		s.log.ErrorContext(ctx, "create payment intent", "package", pkg.ID, "err", err)
		return domain.IntentResponse{}, domain.Upstream("Failed to create payment intent.", err)
	}

	s.metrics.IntentsCreated.WithLabelValues(string(pkg.ID), metrics.OutcomeOK).Inc()
	s.log.InfoContext(ctx, "payment intent created", "package", pkg.ID, "intent", intent.ID, "amount", intent.Amount)

	return domain.IntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		PackageID:       pkg.ID,
		Amount:          pkg.Retainer,
	}, nil
}

// ConfirmPayment re-reads the intent from the processor and only treats it as
// paid when the processor says so. The notification is best effort.
func (s *Service) ConfirmPayment(ctx context.Context, req domain.ConfirmRequest) (domain.ConfirmResponse, error) {
	if err := s.requireProcessor(); err != nil {
		return domain.ConfirmResponse{}, err
	}
	id := strings.TrimSpace(req.PaymentIntentID)
	if id == "" {
		return domain.ConfirmResponse{}, domain.Validation("Payment intent ID is required.")
	}

	intent, err := s.processor.RetrievePaymentIntent(ctx, id)
	if err != nil {
		s.metrics.PaymentsConfirmed.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.ErrorContext(ctx, "retrieve payment intent", "intent", id, "err", err)
		return domain.ConfirmResponse{}, domain.Upstream("Payment processing failed.", err)
	}
	if intent.Status != domain.StatusSucceeded {
		s.metrics.PaymentsConfirmed.WithLabelValues(metrics.OutcomeRejected).Inc()
		s.log.WarnContext(ctx, "confirm for unpaid intent", "intent", id, "status", intent.Status)
		return domain.ConfirmResponse{}, domain.Validationf(domain.ErrPaymentNotSucceeded, "Payment was not successful.")
	}
	s.metrics.PaymentsConfirmed.WithLabelValues(metrics.OutcomeOK).Inc()

	pkg := s.packageFor(intent)
	req = s.fillFromIntent(ctx, req, intent)

	if err := s.notifier.PaymentReceived(ctx, pkg, intent, req); err != nil {
		s.metrics.Notifications.WithLabelValues("payment", metrics.OutcomeFailed).Inc()
		s.log.ErrorContext(ctx, "payment notification failed", "intent", intent.ID, "err", err)
	} else {
		s.metrics.Notifications.WithLabelValues("payment", metrics.OutcomeOK).Inc()
	}

	return domain.ConfirmResponse{
		Success:         true,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
	}, nil
}

// packageFor resolves the package recorded on the intent. An id that is no
// longer in the catalog still yields a usable record priced at what was
// actually charged.
func (s *Service) packageFor(intent domain.PaymentIntent) domain.Package {
	id := domain.PackageID(intent.Metadata[domain.MetaPackageID])
	if pkg, err := s.catalog.Lookup(id); err == nil {
		return pkg
	}
	name := intent.Metadata[domain.MetaPackageName]
	if name == "" {
		name = unknownPackageName
	}
	return domain.Package{ID: id, Name: name, Retainer: intent.Amount}
}

// fillFromIntent completes the customer identity from the intent and drops a
// signature that is not a drawn PNG.
func (s *Service) fillFromIntent(ctx context.Context, req domain.ConfirmRequest, intent domain.PaymentIntent) domain.ConfirmRequest {
	req.PaymentIntentID = intent.ID
	if strings.TrimSpace(req.CustomerName) == "" {
		req.CustomerName = intent.Metadata[domain.MetaCustomerName]
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		req.CustomerEmail = intent.ReceiptEmail
	}
	if req.Signature != "" {
		img, err := signature.ParseDataURL(req.Signature)
		if err != nil || signature.IsBlank(img, nil) {
			s.log.WarnContext(ctx, "ignoring unusable signature on confirm", "intent", intent.ID, "err", err)
			req.Signature = ""
		}
	}
	return req
}
