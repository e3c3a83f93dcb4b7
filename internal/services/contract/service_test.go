package contract_test

import (
	"context"
	"errors"
	"testing"

	"everafter/internal/domain"
	"everafter/internal/services/contract"
	"everafter/internal/session"
	"everafter/internal/signature"
)

type fakeAPI struct {
	subs []domain.ContractSubmission
	err  error
}

func (a *fakeAPI) ListPackages(context.Context) ([]domain.Package, error) { return nil, nil }

func (a *fakeAPI) CreatePaymentIntent(context.Context, domain.IntentRequest) (domain.IntentResponse, error) {
	return domain.IntentResponse{}, nil
}

func (a *fakeAPI) ConfirmPayment(context.Context, domain.ConfirmRequest) (domain.ConfirmResponse, error) {
	return domain.ConfirmResponse{}, nil
}

func (a *fakeAPI) SubmitContract(_ context.Context, sub domain.ContractSubmission) error {
	a.subs = append(a.subs, sub)
	return a.err
}

var essential = domain.Package{ID: "essential", Name: "Essential Collection", Price: 180000, Retainer: 18000}

func signedSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(320, 140, 1)
	s.Fill("essential", domain.BookingForm{FullName: "Jane Doe", Email: "jane@example.com", WeddingDate: "2026-06-01"})
	s.Pad.BeginStroke(signature.Point{X: 10, Y: 10})
	s.Pad.ExtendStroke(signature.Point{X: 80, Y: 50})
	s.Pad.EndStroke()
	return s
}

func TestSubmit_SendsOnceAndClears(t *testing.T) {
	api := &fakeAPI{}
	s := signedSession(t)

	if err := contract.New(api, s, nil).Submit(context.Background(), essential); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(api.subs) != 1 {
		t.Fatalf("want 1 submission, got %d", len(api.subs))
	}
	sub := api.subs[0]
	if sub.PackageID != "essential" || sub.PackageName != "Essential Collection" || sub.FullName != "Jane Doe" {
		t.Fatalf("submission: %+v", sub)
	}
	img, err := signature.ParseDataURL(sub.Signature)
	if err != nil || signature.IsBlank(img, nil) {
		t.Fatalf("signature not a drawn PNG: %v", err)
	}
	if s.Form("essential") != (domain.BookingForm{}) || s.Pad.HasSignature() {
		t.Fatal("session not cleared after success")
	}
}

func TestSubmit_LocalValidation(t *testing.T) {
	api := &fakeAPI{}

	s := session.New(320, 140, 1)
	if err := contract.New(api, s, nil).Submit(context.Background(), essential); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("empty form: want validation, got %v", err)
	}

	s.Fill("essential", domain.BookingForm{FullName: "Jane Doe", Email: "jane@example.com", WeddingDate: "2026-06-01"})
	if err := contract.New(api, s, nil).Submit(context.Background(), essential); !errors.Is(err, domain.ErrSignatureMissing) {
		t.Fatalf("unsigned: want ErrSignatureMissing, got %v", err)
	}
	if len(api.subs) != 0 {
		t.Fatal("posted an invalid contract")
	}
}

func TestSubmit_FailureAsksForRetryOnce(t *testing.T) {
	api := &fakeAPI{err: domain.Upstream("Failed to send email notification.", nil)}
	s := signedSession(t)

	err := contract.New(api, s, nil).Submit(context.Background(), essential)
	if !errors.Is(err, domain.ErrRetry) {
		t.Fatalf("want ErrRetry, got %v", err)
	}
	if len(api.subs) != 1 {
		t.Fatalf("want exactly one attempt, got %d", len(api.subs))
	}
	if s.Form("essential").FullName != "Jane Doe" || !s.Pad.HasSignature() {
		t.Fatal("session cleared after a failed submission")
	}
}
