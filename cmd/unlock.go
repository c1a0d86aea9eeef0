package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/gate"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock CODE",
	Short: "Enter the access code to unlock every question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		svc, err := e.service(cmd.Context())
		if err != nil {
			return fmt.Errorf("open study service: %w", err)
		}
		g := svc.Gate()
		if g.Authenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Already unlocked.")
			return nil
		}
		err = g.Authenticate(cmd.Context(), args[0])
		switch {
		case errors.Is(err, gate.ErrInvalidCode):
			return err
		case err != nil:
			// Unlocked for this run only.
			log := svc.Logger()
			log.Warn().Err(err).Msg("access granted but not saved")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unlocked all %d questions.\n", e.bank.Len())
		return nil
	},
}
