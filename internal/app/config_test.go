package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"everafter/internal/app"
)

func TestLoadServerConfig_EnvNames(t *testing.T) {
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("EMAIL_USER", "studio@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_1")
	t.Setenv("EVERAFTER_ADDR", ":9090")

	cfg, err := app.LoadServerConfig("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Email.Host != "smtp.example.com" || cfg.Email.Port != 465 || cfg.Email.Pass != "secret" {
		t.Fatalf("email: %+v", cfg.Email)
	}
	if cfg.Stripe.SecretKey != "sk_test_1" || cfg.Addr != ":9090" {
		t.Fatalf("config: %+v", cfg)
	}
	if cfg.Operator() != "studio@example.com" {
		t.Fatalf("operator fallback: %q", cfg.Operator())
	}
}

func TestLoadServerConfig_DefaultsAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	doc := "addr: \":7000\"\noperator_email: ops@example.com\nshutdown_timeout: 5s\nemail:\n  host: smtp.example.com\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := app.LoadServerConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7000" || cfg.Email.Host != "smtp.example.com" || cfg.Email.Port != 587 {
		t.Fatalf("config: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 5*time.Second || cfg.LogLevel != "info" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.Operator() != "ops@example.com" {
		t.Fatalf("operator: %q", cfg.Operator())
	}
}

func TestLoadServerConfig_MissingFile(t *testing.T) {
	if _, err := app.LoadServerConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("EVERAFTER_SERVER", "http://env:1")
	t.Setenv("EVERAFTER_PUBLISHABLE_KEY", "pk_env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("server", "", "")
	fs.String("publishable-key", "", "")
	fs.Bool("verbose", false, "")
	if err := fs.Parse([]string{"--server", "http://flag:2", "--verbose"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := app.LoadClientConfig(fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server != "http://flag:2" {
		t.Fatalf("server: %q", cfg.Server)
	}
	if cfg.PublishableKey != "pk_env" {
		t.Fatalf("publishable key from env: %q", cfg.PublishableKey)
	}
	if !cfg.Verbose || cfg.Timeout != 30*time.Second {
		t.Fatalf("config: %+v", cfg)
	}
}

func TestNewServer_WithoutCredentials(t *testing.T) {
	cfg, err := app.LoadServerConfig("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := app.NewServer(cfg, app.NewServerLogger(os.Stderr, "error")); err != nil {
		t.Fatalf("server must start without credentials: %v", err)
	}

	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := app.NewServer(cfg, app.NewServerLogger(os.Stderr, "error")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
