package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// ErrIntegrityViolations is returned when the check finds offending operators, so the
// process exits non-zero.
var ErrIntegrityViolations = errors.New("integrity violations found")

// IntegrityViolation is one operator holding several open shifts.
type IntegrityViolation struct {
	OperatorID string `json:"operatorID"`
	OpenShifts int    `json:"openShifts"`
}

// NewIntegrityCommand creates the integrity command.
func NewIntegrityCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "integrity",
		Short: "List operators with more than one open shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.store.Close()

			counts, err := e.services.Integrity.FindOperatorsWithMultipleOpenShifts(e.ctx)
			if err != nil {
				return err
			}

			violations := make([]IntegrityViolation, 0, len(counts))
			for id, n := range counts {
				violations = append(violations, IntegrityViolation{OperatorID: id, OpenShifts: n})
			}
			slices.SortFunc(violations, func(a, b IntegrityViolation) int {
				if a.OperatorID < b.OperatorID {
					return -1
				}
				if a.OperatorID > b.OperatorID {
					return 1
				}
				return 0
			})

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				if err := writeJSON(out, violations); err != nil {
					return err
				}
			} else if len(violations) == 0 {
				fmt.Fprintln(out, "ok: no operator has more than one open shift")
			} else {
				for _, v := range violations {
					fmt.Fprintf(out, "operator %s has %d open shifts\n", v.OperatorID, v.OpenShifts)
				}
			}

			if len(violations) > 0 {
				return fmt.Errorf("%w: %d operator(s)", ErrIntegrityViolations, len(violations))
			}
			return nil
		},
	}
}
