package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// NewOperatorCommand creates the operator command group.
func NewOperatorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage till operators",
	}
	cmd.AddCommand(newOperatorAddCommand(rootOpts))
	return cmd
}

func newOperatorAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name  string
		pin   string
		perms []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an operator with a PIN",
		Example: `  drawerctl operator add --name Dana --pin 4821 --perm shift:open --perm shift:close \
      --perm shift:cash_drop --perm shift:view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.store.Close()

			req := dto.CreateOperatorRequest{Name: name, PIN: pin}
			for _, p := range perms {
				req.Permissions = append(req.Permissions, domain.Permission(p))
			}

			operator, err := e.services.Operators.CreateOperator(e.ctx, req, cliActor)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), operator)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "operator %s created (%s)\n", operator.OperatorID, operator.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&pin, "pin", "", "numeric login PIN")
	cmd.Flags().StringArrayVar(&perms, "perm", nil, "permission to grant (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pin")
	return cmd
}
