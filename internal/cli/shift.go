package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/report"
	"github.com/SscSPs/pos_shift_app/internal/utils"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	var counted string

	cmd := &cobra.Command{
		Use:   "summary <shift-id>",
		Short: "Recompute the live reconciliation of a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var countedAmount *decimal.Decimal
			if counted != "" {
				d, err := decimal.NewFromString(counted)
				if err != nil {
					return fmt.Errorf("invalid --counted %q: %w", counted, err)
				}
				countedAmount = &d
			}

			e, err := rootOpts.setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.store.Close()

			summary, err := e.services.Reconciler.ComputeSummary(e.ctx, args[0])
			if err != nil {
				return err
			}

			resp := dto.ShiftSummaryResponse{ReconciliationSummary: *summary, CurrencyCode: e.cfg.Store.CurrencyCode}
			if countedAmount != nil {
				v := e.services.Reconciler.Variance(*countedAmount, summary.ExpectedBalance)
				resp.Variance = &v
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			precision := e.cfg.Store.Precision
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			row := func(label string, amount decimal.Decimal) {
				fmt.Fprintf(tw, "%s\t%s\t\n", label, utils.FormatWithPrecision(amount, precision))
			}
			fmt.Fprintf(tw, "shift\t%s\t\n", summary.ShiftID)
			fmt.Fprintf(tw, "currency\t%s\t\n", resp.CurrencyCode)
			row("opening", summary.OpeningBalance)
			row("cash sales", summary.CashSales)
			row("cash refunds", summary.CashRefunds)
			row("cash expenses", summary.CashExpenses)
			row("cash drops", summary.CashDrops)
			row("expected", summary.ExpectedBalance)
			for _, entry := range summary.PaymentBreakdown.Entries() {
				row("  "+e.cfg.Store.MethodLabel(entry.Method), entry.Total)
			}
			row("total sales", summary.TotalSales)
			if resp.Variance != nil {
				row("counted", *countedAmount)
				fmt.Fprintf(tw, "variance\t%s %s\t\n", utils.FormatWithPrecision(resp.Variance.Amount, precision), resp.Variance.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&counted, "counted", "", "preview the variance against this counted cash")
	return cmd
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <shift-id>",
		Short: "Print the X- or Z-report of a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.store.Close()

			renderer, err := report.NewRenderer(e.cfg.Store)
			if err != nil {
				return err
			}

			shift, err := e.services.Shift.GetShift(e.ctx, args[0])
			if err != nil {
				return err
			}
			in := report.Input{Shift: *shift, OperatorName: shift.OperatorID, PrintedAt: time.Now().UTC()}
			if operator, err := e.services.Operators.GetOperator(e.ctx, shift.OperatorID); err == nil {
				in.OperatorName = operator.Name
			}
			if shift.IsOpen() {
				if in.Summary, err = e.services.Reconciler.ComputeSummary(e.ctx, shift.ShiftID); err != nil {
					return err
				}
			}
			return renderer.Render(cmd.OutOrStdout(), in)
		},
	}
}
