package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve POST /analyze, GET /healthz and GET /metrics until interrupted.

Example:
  curl -X POST localhost:5055/analyze -H 'Content-Type: application/json' -d '{"company":"Acme Corp"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				st.cfg.Server.Addr = addr
			}

			application, err := st.application()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.Serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (overrides config)")
	return cmd
}
