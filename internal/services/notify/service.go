package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"everafter/internal/crypto"
	"everafter/internal/domain"
)

const (
	// DefaultFromName is the display name on every notification.
	DefaultFromName = "Ever After Booking"
	brand           = "Ever After Photography"
	timeLayout      = "January 2, 2006 at 03:04 PM MST"
)

// Config addresses outgoing mail.
type Config struct {
	From          string
	FromName      string
	OperatorEmail string
}

// Service implements domain.Notifier on top of a Mailer.
type Service struct {
	mailer domain.Mailer
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

var _ domain.Notifier = (*Service)(nil)

// New constructs a notifier. A nil logger discards.
func New(m domain.Mailer, cfg Config, log *slog.Logger) *Service {
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{mailer: m, cfg: cfg, log: log, now: time.Now}
}

// WithClock replaces the timestamp source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Row is one labelled value in a notification.
type Row struct {
	Label string
	Value string
	Mono  bool
}

// Content is the variable part of a notification.
type Content struct {
	Subject   string
	Title     string
	Badge     string
	Rows      []Row
	Signature string // PNG data URL, already validated; empty to omit
	Noun      string // "contract", "booking"
	Verb      string // "submitted", "completed"
	Customer  string // customer address, may be empty
}

type view struct {
	Content
	Brand       string
	Signature   template.URL
	Fingerprint string
	When        string
}

// Build renders c into a finished message addressed to the operator and the
// customer.
func (s *Service) Build(c Content) (domain.MailMessage, error) {
	v := view{
		Content: c,
		Brand:   brand,
		When:    s.now().Format(timeLayout),
	}
	if c.Signature != "" {
		// Callers only pass data URLs that decoded as PNG.
		v.Signature = template.URL(c.Signature)
		v.Fingerprint = crypto.Grouped(crypto.Fingerprint([]byte(c.Signature)))
	}

	var html bytes.Buffer
	if err := page.Execute(&html, v); err != nil {
		return domain.MailMessage{}, fmt.Errorf("render notification: %w", err)
	}

	return domain.MailMessage{
		FromName: s.cfg.FromName,
		From:     s.cfg.From,
		To:       recipients(s.cfg.OperatorEmail, c.Customer),
		Subject:  c.Subject,
		HTML:     html.String(),
		Text:     plain(v),
	}, nil
}

// ContractSubmitted notifies about a manual contract submission.
func (s *Service) ContractSubmitted(ctx context.Context, pkg domain.Package, sub domain.ContractSubmission) error {
	return s.send(ctx, Content{
		Subject: fmt.Sprintf("New Contract: %s - %s", pkg.Name, sub.FullName),
		Title:   "New Contract Submission",
		Rows: []Row{
			{Label: "Package Selected", Value: pkg.Name},
			{Label: "Customer Name", Value: sub.FullName},
			{Label: "Customer Email", Value: sub.Email},
			{Label: "Wedding Date", Value: sub.WeddingDate},
		},
		Signature: sub.Signature,
		Noun:      "contract",
		Verb:      "submitted",
		Customer:  sub.Email,
	})
}

// PaymentReceived notifies about a verified retainer payment. The amount and
// transaction id come from the processor's record, never from req.
func (s *Service) PaymentReceived(
	ctx context.Context,
	pkg domain.Package,
	intent domain.PaymentIntent,
	req domain.ConfirmRequest,
) error {
	rows := []Row{
		{Label: "Package Selected", Value: pkg.Name},
		{Label: "Customer Name", Value: req.CustomerName},
		{Label: "Customer Email", Value: req.CustomerEmail},
	}
	if req.WeddingDate != "" {
		rows = append(rows, Row{Label: "Wedding Date", Value: req.WeddingDate})
	}
	rows = append(rows,
		Row{Label: "Payment Amount", Value: intent.Amount.String() + " (Retainer)"},
		Row{Label: "Transaction ID", Value: intent.ID, Mono: true},
	)

	return s.send(ctx, Content{
		Subject:   fmt.Sprintf("Payment Received: %s - %s", pkg.Name, req.CustomerName),
		Title:     "New Booking with Payment",
		Badge:     "Payment Successful",
		Rows:      rows,
		Signature: req.Signature,
		Noun:      "booking",
		Verb:      "completed",
		Customer:  req.CustomerEmail,
	})
}

func (s *Service) send(ctx context.Context, c Content) error {
	msg, err := s.Build(c)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "notification sent",
		"subject", msg.Subject,
		"recipients", len(msg.To),
		"signature", fingerprintOf(c.Signature),
	)
	return nil
}

func fingerprintOf(sig string) string {
	if sig == "" {
		return ""
	}
	return crypto.Fingerprint([]byte(sig))
}

func recipients(operator, customer string) []string {
	var to []string
	if op := strings.TrimSpace(operator); op != "" {
		to = append(to, op)
	}
	if c := strings.TrimSpace(customer); c != "" && !strings.EqualFold(c, strings.TrimSpace(operator)) {
		to = append(to, c)
	}
	return to
}

func plain(v view) string {
	var b strings.Builder
	b.WriteString(v.Title + "\n" + v.Brand + "\n")
	if v.Badge != "" {
		b.WriteString("[" + v.Badge + "]\n")
	}
	b.WriteString("\n")
	for _, r := range v.Rows {
		fmt.Fprintf(&b, "%s: %s\n", r.Label, r.Value)
	}
	if v.Fingerprint != "" {
		fmt.Fprintf(&b, "Signature: attached in HTML view (%s)\n", v.Fingerprint)
	}
	fmt.Fprintf(&b, "\nThis %s was %s on %s.\n", v.Noun, v.Verb, v.When)
	return b.String()
}
