package booking

import (
	"context"
	"errors"
	"strings"

	"everafter/internal/domain"
	"everafter/internal/metrics"
	"everafter/internal/signature"
)

// SubmitContract validates a manual contract and emails it. The package name
// in the message is the catalog's, whatever the client sent.
func (s *Service) SubmitContract(ctx context.Context, sub domain.ContractSubmission) error {
	sub.FullName = strings.TrimSpace(sub.FullName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.WeddingDate = strings.TrimSpace(sub.WeddingDate)
	sub.Signature = strings.TrimSpace(sub.Signature)
	sub.PackageName = strings.TrimSpace(sub.PackageName)

	if sub.PackageID == "" || sub.PackageName == "" || sub.FullName == "" ||
		sub.Email == "" || sub.WeddingDate == "" || sub.Signature == "" {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Validation("All fields are required, including signature.")
	}
	if err := domain.CheckEmail(sub.Email); err != nil {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return err
	}

	pkg, err := s.catalog.Lookup(domain.PackageID(strings.TrimSpace(string(sub.PackageID))))
	if err != nil {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return err
	}
	sub.PackageID = pkg.ID
	sub.PackageName = pkg.Name

	img, err := signature.ParseDataURL(sub.Signature)
	if errors.Is(err, signature.ErrImageTooLarge) {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Validationf(err, "Signature image is too large.")
	}
	if err != nil {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Validationf(err, "Signature must be a PNG image.")
	}
	if signature.IsBlank(img, nil) {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Validationf(domain.ErrSignatureMissing, "Please sign the contract before submitting.")
	}

	if err := s.notifier.ContractSubmitted(ctx, pkg, sub); err != nil {
		s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.metrics.Notifications.WithLabelValues("contract", metrics.OutcomeFailed).Inc()
		s.log.ErrorContext(ctx, "contract notification failed", "package", pkg.ID, "err", err)
		if domain.KindOf(err) == domain.KindConfiguration {
			return err
		}
		return domain.Upstream("Failed to send email notification.", err)
	}

	s.metrics.ContractsSubmitted.WithLabelValues(metrics.OutcomeOK).Inc()
	s.metrics.Notifications.WithLabelValues("contract", metrics.OutcomeOK).Inc()
	s.log.InfoContext(ctx, "contract submitted", "package", pkg.ID)
	return nil
}
