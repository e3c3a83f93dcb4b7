package commands

import (
	"github.com/spf13/cobra"

	"everafter/internal/domain"
)

// formFlags are the booking form inputs shared by book and checkout.
type formFlags struct {
	name, email, date, strokes string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "your full name")
	cmd.Flags().StringVar(&f.email, "email", "", "your email address")
	cmd.Flags().StringVar(&f.date, "date", "", "wedding date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.strokes, "strokes", "", "signature stroke recording (JSON)")
}

// apply fills the session form for id and replays the signature, if any.
// Missing values are left for session validation to report.
func (f *formFlags) apply(id domain.PackageID) error {
	appCtx.Session.Fill(id, domain.BookingForm{
		FullName:    f.name,
		Email:       f.email,
		WeddingDate: f.date,
	})
	if f.strokes == "" {
		return nil
	}
	_, err := loadSignature(f.strokes)
	return err
}
