package notify_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"everafter/internal/domain"
	"everafter/internal/services/notify"
)

type fakeMailer struct {
	sent []domain.MailMessage
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg domain.MailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

const sig = domain.PNGDataURLPrefix + "iVBORw0KGgo="

var (
	essential = domain.Package{ID: "essential", Name: "Essential Collection", Price: 180000, Retainer: 18000}
	fixedNow  = func() time.Time { return time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC) }
)

func newService(m domain.Mailer) *notify.Service {
	return notify.New(m, notify.Config{From: "studio@example.com", OperatorEmail: "ops@example.com"}, nil).
		WithClock(fixedNow)
}

func TestContractSubmitted_AddressesOperatorAndCustomer(t *testing.T) {
	m := &fakeMailer{}
	s := newService(m)

	err := s.ContractSubmitted(context.Background(), essential, domain.ContractSubmission{
		PackageID:   "essential",
		PackageName: "Essential Collection",
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		WeddingDate: "2026-06-01",
		Signature:   sig,
	})
	if err != nil {
		t.Fatalf("contract submitted: %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("want 1 message, got %d", len(m.sent))
	}
	msg := m.sent[0]
	if got := strings.Join(msg.To, ","); got != "ops@example.com,jane@example.com" {
		t.Fatalf("recipients: %s", got)
	}
	if msg.Subject != "New Contract: Essential Collection - Jane Doe" {
		t.Fatalf("subject: %q", msg.Subject)
	}
	if msg.FromName != notify.DefaultFromName || msg.From != "studio@example.com" {
		t.Fatalf("from: %q <%s>", msg.FromName, msg.From)
	}
	for _, want := range []string{"New Contract Submission", "2026-06-01", `src="` + sig + `"`, "March 14, 2026 at 03:04 PM UTC"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	if strings.Contains(msg.HTML, "Payment Successful") {
		t.Fatal("contract message carries the payment badge")
	}
	if !strings.Contains(msg.Text, "Customer Name: Jane Doe") {
		t.Fatalf("text body: %q", msg.Text)
	}
}

func TestBuild_EscapesUserInput(t *testing.T) {
	s := newService(&fakeMailer{})
	msg, err := s.Build(notify.Content{
		Subject: "x",
		Title:   "New Contract Submission",
		Rows:    []notify.Row{{Label: "Customer Name", Value: `<script>alert(1)</script>`}},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("user input was not escaped")
	}
	if strings.Contains(msg.HTML, "signature-box") {
		t.Fatal("signature block rendered without a signature")
	}
}

func TestPaymentReceived_UsesProcessorAmount(t *testing.T) {
	m := &fakeMailer{}
	s := newService(m)

	intent := domain.PaymentIntent{ID: "pi_123", Amount: 34000, Status: domain.StatusSucceeded}
	luxury := domain.Package{ID: "luxury", Name: "Luxury Collection", Price: 340000, Retainer: 34000}
	err := s.PaymentReceived(context.Background(), luxury, intent, domain.ConfirmRequest{
		PaymentIntentID: "pi_123",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
	})
	if err != nil {
		t.Fatalf("payment received: %v", err)
	}
	msg := m.sent[0]
	if msg.Subject != "Payment Received: Luxury Collection - Jane Doe" {
		t.Fatalf("subject: %q", msg.Subject)
	}
	for _, want := range []string{"Payment Successful", "$340.00 (Retainer)", "pi_123", "New Booking with Payment"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	if strings.Contains(msg.HTML, "Wedding Date") {
		t.Fatal("empty wedding date should be omitted")
	}
}

func TestPaymentReceived_OperatorOnlyWithoutCustomer(t *testing.T) {
	m := &fakeMailer{}
	s := newService(m)

	err := s.PaymentReceived(context.Background(), essential, domain.PaymentIntent{ID: "pi_1", Amount: 18000}, domain.ConfirmRequest{})
	if err != nil {
		t.Fatalf("payment received: %v", err)
	}
	if got := m.sent[0].To; len(got) != 1 || got[0] != "ops@example.com" {
		t.Fatalf("recipients: %v", got)
	}
}

func TestSend_PropagatesMailerError(t *testing.T) {
	boom := errors.New("relay down")
	s := newService(&fakeMailer{err: boom})

	err := s.ContractSubmitted(context.Background(), essential, domain.ContractSubmission{FullName: "Jane", Email: "jane@example.com"})
	if !errors.Is(err, boom) {
		t.Fatalf("want relay error, got %v", err)
	}
}
