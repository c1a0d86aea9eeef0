package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/bank"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the exam book markdown into a question bank JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		in, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer in.Close()

		questions, err := bank.ParseMarkdown(in, bank.DefaultCategoryRules)
		if err != nil {
			return fmt.Errorf("parse %s: %w", input, err)
		}
		if _, err := bank.New(questions); err != nil {
			return fmt.Errorf("check converted bank: %w", err)
		}

		var out io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := bank.WriteJSON(out, questions); err != nil {
			return fmt.Errorf("write bank: %w", err)
		}
		if output != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d questions to %s\n", len(questions), output)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("input", "", "Markdown source file")
	convertCmd.Flags().String("output", "", "JSON output file (default: stdout)")
	_ = convertCmd.MarkFlagRequired("input")
}
