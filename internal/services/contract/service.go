package contract

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"everafter/internal/domain"
	"everafter/internal/session"
)

// Service posts manual contract submissions for one session.
type Service struct {
	api  domain.BookingAPI
	sess *session.Session
	log  *slog.Logger
	busy atomic.Bool
}

// New returns a contract service for sess.
func New(api domain.BookingAPI, sess *session.Session, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{api: api, sess: sess, log: log}
}

// Submit sends the contract for pkg. Local validation errors are returned
// as is; anything that fails after the request is sent wraps ErrRetry. On
// success the form is discarded and the signature surface cleared.
func (s *Service) Submit(ctx context.Context, pkg domain.Package) error {
	if !s.busy.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	defer s.busy.Store(false)

	form, err := s.sess.Validate(pkg.ID)
	if err != nil {
		return err
	}
	if !s.sess.Pad.HasSignature() {
		return domain.Validationf(domain.ErrSignatureMissing, "Please sign the contract before submitting.")
	}
	art, err := s.sess.Pad.Export()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRetry, err)
	}

	sub := domain.ContractSubmission{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		FullName:    form.FullName,
		Email:       form.Email,
		WeddingDate: form.WeddingDate,
		Signature:   art.DataURL(),
	}
	if err := s.api.SubmitContract(ctx, sub); err != nil {
		s.log.Warn("contract submission failed", "package", pkg.ID, "err", err)
		return fmt.Errorf("%w: %w", domain.ErrRetry, err)
	}

	s.sess.Discard(pkg.ID)
	s.sess.Pad.Reset()
	s.log.Info("contract submitted", "package", pkg.ID)
	return nil
}
