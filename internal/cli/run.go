package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/N3moAhead/household/internal/buildinfo"
	"github.com/N3moAhead/household/internal/scenario"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a scenario file and print the resulting household report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogger(false); err != nil {
				return err
			}
			log := a.log.With("scenario", args[0])

			f, err := scenario.Load(args[0])
			if err != nil {
				log.Error("scenario failed", "error", err)
				return err
			}
			rep, err := scenario.Run(f, log)
			if err != nil {
				log.Error("scenario failed", "error", err)
				return err
			}
			log.Info("scenario complete", "people", len(rep.People), "families", len(rep.Families))
			return rep.Render(cmd.OutOrStdout())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
