package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"everafter/internal/domain"
	"everafter/internal/services/checkout"
)

// checkout <package>: pay the retainer and confirm the booking.
func checkoutCmd() *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "checkout <package>",
		Short: "Sign, pay the retainer and confirm the booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orch, err := appCtx.Checkout()
			if err != nil {
				return err
			}
			orch.OnTransition(func(from, to checkout.State) {
				appCtx.Log.Debug("checkout", "from", from, "to", to)
			})

			id := domain.PackageID(args[0])
			if err := form.apply(id); err != nil {
				return err
			}
			ps, err := orch.Begin(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Retainer due: %s (payment %s)\n", ps.Amount, ps.PaymentIntentID)

			res, err := orch.Submit(ctx)
			if err != nil {
				orch.Cancel()
				return err
			}
			fmt.Printf("Paid %s for %s. Payment %s.\n", res.Amount, res.PackageID, res.PaymentIntentID)
			if res.Warning != "" {
				fmt.Fprintln(os.Stderr, "warning:", res.Warning)
			}
			return nil
		},
	}
	form.register(cmd)
	return cmd
}
