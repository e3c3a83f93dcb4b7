package app

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"everafter/internal/client"
	"everafter/internal/domain"
	"everafter/internal/processor/stripe"
	"everafter/internal/services/checkout"
	"everafter/internal/services/contract"
	"everafter/internal/session"
	"everafter/internal/signature"
	"everafter/internal/store"
)

// App is one CLI run: a booking session plus the services acting on it.
type App struct {
	API      domain.BookingAPI
	Session  *session.Session
	Contract *contract.Service
	Store    *store.FileStore
	Log      *slog.Logger

	cfg ClientConfig
}

// NewApp builds the CLI dependency graph from cfg.
func NewApp(cfg ClientConfig, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.Home = filepath.Join(dir, ".everafter")
	}

	hc := &http.Client{Timeout: cfg.Timeout}
	api := client.NewHTTP(cfg.Server, hc)
	sess := session.New(cfg.Width, signature.DefaultHeight, cfg.Scale)

	return &App{
		API:      api,
		Session:  sess,
		Contract: contract.New(api, sess, log),
		Store:    store.NewFileStore(cfg.Home),
		Log:      log,
		cfg:      cfg,
	}, nil
}

// Checkout returns an orchestrator whose payment element confirms with the
// configured publishable key and payment method.
func (a *App) Checkout() (*checkout.Orchestrator, error) {
	if a.cfg.PublishableKey == "" {
		return nil, errors.New("no publishable key configured; use --publishable-key or EVERAFTER_PUBLISHABLE_KEY")
	}
	el := stripe.NewElement(a.cfg.PublishableKey, a.cfg.PaymentMethod, a.cfg.ReturnURL, nil)
	return checkout.New(a.API, el, a.Session, a.Log), nil
}
