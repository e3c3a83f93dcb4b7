package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// StripeConfig holds processor credentials.
type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig describes the SMTP relay.
type EmailConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	From string `mapstructure:"from"`
}

// ServerConfig is everything everafter-server reads at startup. Missing
// Stripe or email settings do not stop the server; the endpoints that need
// them answer with a configuration error instead.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	CatalogFile     string        `mapstructure:"catalog_file"`
	OperatorEmail   string        `mapstructure:"operator_email"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	Stripe          StripeConfig  `mapstructure:"stripe"`
	Email           EmailConfig   `mapstructure:"email"`
}

// serverEnv maps config keys to the environment variable names operators
// already use for the hosted site.
var serverEnv = map[string]string{
	"addr":              "EVERAFTER_ADDR",
	"catalog_file":      "EVERAFTER_CATALOG_FILE",
	"operator_email":    "EVERAFTER_OPERATOR_EMAIL",
	"log_level":         "EVERAFTER_LOG_LEVEL",
	"shutdown_timeout":  "EVERAFTER_SHUTDOWN_TIMEOUT",
	"max_body_bytes":    "EVERAFTER_MAX_BODY_BYTES",
	"stripe.secret_key": "STRIPE_SECRET_KEY",
	"email.host":        "EMAIL_HOST",
	"email.port":        "EMAIL_PORT",
	"email.user":        "EMAIL_USER",
	"email.pass":        "EMAIL_PASS",
	"email.from":        "EMAIL_FROM",
}

// LoadServerConfig reads defaults, then the YAML/TOML/JSON file at path if
// one is given, then the environment, then any flags bound to keys.
func LoadServerConfig(path string, flags *pflag.FlagSet) (ServerConfig, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("catalog_file", "")
	v.SetDefault("operator_email", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", 15*time.Second)
	v.SetDefault("max_body_bytes", 2<<20)
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("email.host", "")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.user", "")
	v.SetDefault("email.pass", "")
	v.SetDefault("email.from", "")

	for key, env := range serverEnv {
		if err := v.BindEnv(key, env); err != nil {
			return ServerConfig{}, err
		}
	}
	if flags != nil {
		for _, name := range []string{"addr", "catalog_file", "log_level"} {
			if f := flags.Lookup(strings.ReplaceAll(name, "_", "-")); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return ServerConfig{}, err
				}
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ServerConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Operator returns the notification inbox, defaulting to the studio's own
// sender address.
func (c ServerConfig) Operator() string {
	switch {
	case c.OperatorEmail != "":
		return c.OperatorEmail
	case c.Email.From != "":
		return c.Email.From
	default:
		return c.Email.User
	}
}

// ClientConfig is what the everafter CLI needs to act as a booking session.
type ClientConfig struct {
	Server         string        `mapstructure:"server"`
	PublishableKey string        `mapstructure:"publishable_key"`
	PaymentMethod  string        `mapstructure:"payment_method"`
	ReturnURL      string        `mapstructure:"return_url"`
	Home           string        `mapstructure:"home"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Verbose        bool          `mapstructure:"verbose"`
	Width          int           `mapstructure:"width"`
	Scale          float64       `mapstructure:"scale"`
}

// LoadClientConfig resolves CLI settings from flags and EVERAFTER_* variables.
// Flag names use dashes; keys and variables use underscores.
func LoadClientConfig(flags *pflag.FlagSet) (ClientConfig, error) {
	v := viper.New()
	v.SetDefault("server", "http://127.0.0.1:8080")
	v.SetDefault("publishable_key", "")
	v.SetDefault("payment_method", "")
	v.SetDefault("return_url", "")
	v.SetDefault("home", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("verbose", false)
	v.SetDefault("width", 0)
	v.SetDefault("scale", 1.0)

	v.SetEnvPrefix("everafter")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return ClientConfig{}, bindErr
		}
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
