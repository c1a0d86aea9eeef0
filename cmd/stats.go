package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/logging"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		sum := stats.Compute(e.bank, eval)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile: %s\n", user)
		fmt.Fprintf(out, "Studied: %d/%d (%d%%)\n", sum.Studied, sum.Total, sum.StudiedPercent)
		fmt.Fprintf(out, "Known:   %d (%d%%)\n", sum.Known, sum.KnownPercent)
		fmt.Fprintf(out, "Unknown: %d (%d%%)\n\n", sum.Unknown, sum.UnknownPercent)

		fmt.Fprintf(out, "%-24s  %7s  %5s  %7s  %4s\n", "Category", "Studied", "Known", "Unknown", "%")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, c := range sum.Categories {
			fmt.Fprintf(out, "%-24s  %3d/%-3d  %5d  %7d  %3d%%\n",
				c.Name, c.Studied, c.Total, c.Known, c.Unknown, c.Percent)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Profile to report on (default: the current profile)")
}
