package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/study"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *study.Service) error {
			p, ok := svc.Profile()
			if !ok {
				return fmt.Errorf("%w: run parkgolf profile use NAME", profile.ErrNoProfile)
			}
			printProfile(cmd, svc, p)
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *study.Service) error {
			names, err := svc.Profiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet.")
				return nil
			}
			cur, _ := svc.Profile()
			for _, n := range names {
				mark := " "
				if n == cur.Name {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, n)
			}
			return nil
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Switch to a profile, creating it if needed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *study.Service) error {
			p, err := svc.UseProfile(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("use profile: %w", err)
			}
			printProfile(cmd, svc, p)
			return nil
		})
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change the current profile's goal or exam date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *study.Service) error {
			p, ok := svc.Profile()
			if !ok {
				return fmt.Errorf("%w: run parkgolf profile use NAME", profile.ErrNoProfile)
			}
			objective, examDate := p.Objective, p.ExamDate
			if cmd.Flags().Changed("objective") {
				objective, _ = cmd.Flags().GetString("objective")
			}
			if cmd.Flags().Changed("exam-date") {
				examDate, _ = cmd.Flags().GetString("exam-date")
			}
			p, err := svc.EditProfile(cmd.Context(), strings.TrimSpace(objective), strings.TrimSpace(examDate))
			if err != nil {
				return fmt.Errorf("edit profile: %w", err)
			}
			printProfile(cmd, svc, p)
			return nil
		})
	},
}

func init() {
	profileEditCmd.Flags().String("objective", "", "Study goal")
	profileEditCmd.Flags().String("exam-date", "", "Exam date as YYYY-MM-DD; empty clears it")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileEditCmd)
}

// withService runs fn against a CLI-configured study service.
func withService(cmd *cobra.Command, fn func(*study.Service) error) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	svc, err := e.service(cmd.Context())
	if err != nil {
		return fmt.Errorf("open study service: %w", err)
	}
	return fn(svc)
}

func printProfile(cmd *cobra.Command, svc *study.Service, p profile.Profile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:      %s\n", p.Name)
	if p.Objective != "" {
		fmt.Fprintf(out, "Goal:      %s\n", p.Objective)
	}
	if p.ExamDate != "" {
		fmt.Fprintf(out, "Exam date: %s (%s)\n", p.ExamDate, p.DDay(svc.Now()))
	}
}
