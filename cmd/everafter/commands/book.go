package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"everafter/internal/domain"
)

// book <package>: submit a signed contract without paying.
func bookCmd() *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "book <package>",
		Short: "Sign and submit a contract without paying a retainer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pkg, err := lookupPackage(ctx, args[0])
			if err != nil {
				return err
			}
			if err := form.apply(pkg.ID); err != nil {
				return err
			}
			if err := appCtx.Contract.Submit(ctx, pkg); err != nil {
				if errors.Is(err, domain.ErrRetry) {
					appCtx.Log.Debug("contract submit failed", "err", err)
					return domain.ErrRetry
				}
				return err
			}
			fmt.Printf("Contract for %s submitted. A copy is on its way to %s.\n", pkg.Name, form.email)
			return nil
		},
	}
	form.register(cmd)
	return cmd
}
