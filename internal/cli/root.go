package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/N3moAhead/household/internal/config"
	"github.com/N3moAhead/household/internal/logger"
	"github.com/N3moAhead/household/internal/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg   *config.Config
	log   *logger.Logger
	debug bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "household",
		Short:        "household: money, jobs, people and families",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg = config.Load()
			return a.cfg.Validate()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		tuiCmd(a),
		convertCmd(a),
		runCmd(a),
		versionCmd(),
	)
	return cmd
}

// setupLogger logs to stderr unless a log file is configured. The TUI
// owns the terminal, so it only logs when a file is set.
func (a *app) setupLogger(interactive bool) error {
	if interactive && a.cfg.LogFile == "" {
		a.log = logger.NewNop()
		return nil
	}
	l, err := logger.New(a.cfg.LogMode, a.debug, a.cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = l
	return nil
}

func (a *app) runTUI() error {
	if err := a.setupLogger(true); err != nil {
		return err
	}
	return tui.Run(tui.Deps{
		Logger:          a.log,
		DefaultCurrency: a.cfg.DefaultCurrency,
	})
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive household editor",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}
}
