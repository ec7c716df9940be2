package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
)

func removeCmd() *cobra.Command {
	var byID int64

	cmd := &cobra.Command{
		Use:   "remove [position]",
		Short: "Remove an expense",
		Long: `Remove an expense by its position in the current listing (1-based, as
shown by 'list'), or by its stable identifier with --id. Positions shift
when the ledger changes between listing and removal, so --id is the
recommended form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if byID == 0 && len(args) == 0 {
				return fmt.Errorf("provide a position or --id")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if byID != 0 {
				if err := store.DeleteExpense(ctx, byID); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed expense #%d", byID)))
				return nil
			}

			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", common.ErrInvalidIndex, args[0])
			}

			removed, err := store.DeleteExpenseAt(ctx, position)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Removed expense #%d: %s %s", removed.ID, removed.Date, removed.Description)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&byID, "id", 0, "remove by expense identifier instead of position")

	return cmd
}
