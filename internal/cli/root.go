// Package cli contains the signalscanner commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"SignalScanner/internal/app"
	"SignalScanner/internal/config"
	"SignalScanner/internal/logging"
)

// state is shared by the subcommands of one root command.
type state struct {
	cfgFile  string
	logLevel string
	cfg      config.Config
	logger   *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "signalscanner",
		Short: "Discover buying signals for a company from public news search",
		Long: `signalscanner queries several news search backends for a company,
classifies the headlines into buying-signal categories and scores how
ready the company looks to buy.

Example usage:
  signalscanner scan "Acme Corp"            # Print a report
  signalscanner scan "Acme Corp" --json     # Print the report as JSON
  signalscanner serve --addr :8080          # Run the HTTP API`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return st.init()
		},
	}

	root.PersistentFlags().StringVar(&st.cfgFile, "config", "", "config file (default is $SIGNAL_SCANNER_CONFIG)")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newScanCommand(st), newServeCommand(st))
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (s *state) init() error {
	if s.cfgFile != "" {
		s.cfg = config.LoadFrom(s.cfgFile)
	} else {
		s.cfg = config.Load()
	}
	if s.logLevel != "" {
		s.cfg.Logging.Level = s.logLevel
	}
	s.logger = logging.New(s.cfg.Logging.Level, s.cfg.Logging.Format)
	return nil
}

func (s *state) application() (*app.Application, error) {
	return app.New(s.cfg, s.logger)
}
