package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// packages: list the catalog served by the booking server.
func packagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the packages the studio offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := appCtx.API.ListPackages(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tRETAINER\tCOVERAGE")
			for _, p := range pkgs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price, p.Retainer, p.Coverage)
			}
			return w.Flush()
		},
	}
}
