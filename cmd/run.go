package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/app"
)

// runApp opens the store, builds the study service, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	svc, err := e.service(cmd.Context())
	if err != nil {
		return fmt.Errorf("open study service: %w", err)
	}
	log := svc.Logger()
	log.Info().Dur("card_delay", e.cfg.CardDelay).Msg("starting TUI")

	if err := app.Run(app.Options{Service: svc, CardDelay: e.cfg.CardDelay}); err != nil {
		return fmt.Errorf("%w (run %s, see %s)", err, svc.RunID(), e.logFile)
	}
	return nil
}
