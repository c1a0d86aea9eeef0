package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/logging"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every known/unknown mark of a profile",
	Long:  "Clear every known/unknown mark of a profile. Favorites, progress and the profile itself are kept.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("reset is permanent; pass --yes to confirm")
		}
		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		svc, err := e.service(ctx)
		if err != nil {
			return fmt.Errorf("open study service: %w", err)
		}
		user, err := resolveUser(cmd, svc)
		if err != nil {
			return err
		}
		log := logging.FromContext(ctx)
		eval, err := selfeval.Load(ctx, e.kv, user, log)
		if err != nil {
			return fmt.Errorf("load self-assessment: %w", err)
		}
		cleared := eval.StudiedCount()
		if err := eval.Reset(ctx); err != nil {
			return fmt.Errorf("reset self-assessment: %w", err)
		}
		log.Info().Str("user", user).Int("cleared", cleared).Msg("self-assessment reset")
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d marks for %s.\n", cleared, user)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "Profile to reset (default: the current profile)")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
