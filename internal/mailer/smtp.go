package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"everafter/internal/domain"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 587

// Config describes the SMTP relay.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username.
	From    string
	Timeout time.Duration
}

// Configured reports whether host and credentials are all present.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Sender returns the envelope sender address.
func (c Config) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// SMTP implements domain.Mailer with go-mail.
type SMTP struct {
	cfg Config
}

var _ domain.Mailer = (*SMTP)(nil)

// New returns an SMTP mailer. It does not dial until Send.
func New(cfg Config) *SMTP {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTP{cfg: cfg}
}

// Send composes msg and delivers it in one SMTP session.
func (s *SMTP) Send(ctx context.Context, msg domain.MailMessage) error {
	if !s.cfg.Configured() {
		return domain.Configuration("Email is not configured.")
	}
	m, err := s.Compose(msg)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(s.cfg.Host, s.options()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send to %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}
	return nil
}

// Compose builds the MIME message: HTML body with a plain-text alternative.
// An empty From falls back to the configured sender.
func (s *SMTP) Compose(msg domain.MailMessage) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("compose %q: no recipients", msg.Subject)
	}
	from := msg.From
	if from == "" {
		from = s.cfg.Sender()
	}

	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, from); err != nil {
		return nil, fmt.Errorf("compose from %q: %w", from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("compose to %s: %w", strings.Join(msg.To, ", "), err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	}
	return m, nil
}

func (s *SMTP) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Port == 465 {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
}
