package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from a legacy JSON file",
		Long: `Load expenses from an expenses.json file produced by earlier versions of
the tracker. Records without a category are filed under "Uncategorized";
malformed records are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			imp := importer.New(store, cmd.ErrOrStderr())
			result, err := imp.ImportFile(ctx, path)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d expense(s) from %s", result.Imported, path)
			if result.Skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", result.Skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}
}
