package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"everafter/internal/app"
	"everafter/internal/domain"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:           "everafter",
		Short:         "Book a wedding photography package from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadClientConfig(cmd.Flags())
			if err != nil {
				return err
			}
			a, err := app.NewApp(cfg, app.NewCLILogger(os.Stderr, cfg.Verbose))
			if err != nil {
				return err
			}
			if err := os.MkdirAll(a.Store.Dir(), 0o700); err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("server", "http://127.0.0.1:8080", "booking server base URL")
	pf.String("publishable-key", "", "payment processor publishable key")
	pf.String("payment-method", "", "payment method id to charge (e.g. pm_card_visa)")
	pf.String("return-url", "", "return URL for payment methods that redirect")
	pf.String("home", "", "data dir for recordings and signatures (default ~/.everafter)")
	pf.Duration("timeout", 0, "HTTP timeout (default 30s)")
	pf.Int("width", 0, "signature surface width in CSS pixels")
	pf.Float64("scale", 1, "signature surface pixel ratio")
	pf.BoolP("verbose", "v", false, "log requests and state changes")

	root.AddCommand(packagesCmd(), signCmd(), bookCmd(), checkoutCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

// lookupPackage fetches the catalog from the server and returns id's entry.
func lookupPackage(ctx context.Context, id string) (domain.Package, error) {
	pkgs, err := appCtx.API.ListPackages(ctx)
	if err != nil {
		return domain.Package{}, err
	}
	for _, p := range pkgs {
		if string(p.ID) == id {
			return p, nil
		}
	}
	return domain.Package{}, fmt.Errorf("%w: %s", domain.ErrUnknownPackage, id)
}
