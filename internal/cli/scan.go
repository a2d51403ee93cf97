package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"SignalScanner/internal/infrastructure/httpapi"
	"SignalScanner/internal/ui"
)

func newScanCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <company>",
		Short: "Scan news for one company and print its buying signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, st, args[0])
		},
	}

	cmd.Flags().Int("limit", 10, "number of signals to show (0 = all)")
	cmd.Flags().Bool("json", false, "output as JSON")
	cmd.Flags().Bool("notify", false, "send a digest to the configured Telegram chat")
	return cmd
}

func runScan(cmd *cobra.Command, st *state, company string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	notify, _ := cmd.Flags().GetBool("notify")

	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	application, err := st.application()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := application.Scan(ctx, company)
	if err != nil {
		return fmt.Errorf("scan %q: %w", company, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(httpapi.NewReportResponse(report, limit)); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else if err := ui.RenderReport(out, report, limit); err != nil {
		return err
	}

	if notify {
		if err := application.Notify(ctx, report, limit); err != nil {
			return fmt.Errorf("notify: %w", err)
		}
		st.logger.Info("digest sent", "run_id", report.RunID)
	}
	return nil
}
