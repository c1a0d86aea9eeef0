package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/study"
)

var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "List questions matching a term or id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *study.Service) error {
			b, g := svc.Bank(), svc.Gate()
			results := b.Search(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching questions.")
				return nil
			}
			for _, q := range results {
				lock := ""
				if gi, _ := b.GlobalIndexOf(q.ID); !g.Allows(gi) {
					lock = "  (locked)"
				}
				fmt.Fprintf(out, "Q%-4d [%s] %s%s\n", q.ID, q.Category, q.Question, lock)
			}
			return nil
		})
	},
}
