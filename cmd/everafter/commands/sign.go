package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"everafter/internal/crypto"
	"everafter/internal/signature"
)

// sign --strokes <file> --out <name>: render a recording to a PNG.
func signCmd() *cobra.Command {
	var strokes, out, saveRec string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Render a stroke recording into a signature PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := loadSignature(strokes)
			if err != nil {
				return err
			}
			art, err := appCtx.Session.Pad.Export()
			if err != nil {
				return err
			}
			path, err := appCtx.Store.SaveArtifact(out, art)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s (fingerprint %s)\n", path, crypto.Grouped(crypto.Fingerprint(art.PNG)))

			if saveRec != "" {
				// Record the geometry actually drawn, after clamping.
				rec.Width, rec.Height, rec.Scale = appCtx.Session.Pad.Size()
				if err := appCtx.Store.SaveRecording(saveRec, rec); err != nil {
					return err
				}
				fmt.Printf("wrote recording %s\n", saveRec)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strokes, "strokes", "", "stroke recording (JSON)")
	cmd.Flags().StringVarP(&out, "out", "o", "signature.png", "output image, relative to --home")
	cmd.Flags().StringVar(&saveRec, "save-recording", "", "also store the replayed recording under --home")
	_ = cmd.MarkFlagRequired("strokes")
	return cmd
}

// loadSignature replays the recording at path onto the session's surface.
func loadSignature(path string) (signature.Recording, error) {
	rec, err := appCtx.Store.LoadRecording(path)
	if err != nil {
		return signature.Recording{}, err
	}
	pad := appCtx.Session.Pad
	rec.Replay(pad)
	w, h, scale := pad.Size()
	appCtx.Log.Debug("signature replayed",
		"strokes", len(rec.Strokes), "width", w, "height", h, "scale", scale, "signed", pad.HasSignature())
	return rec, nil
}
