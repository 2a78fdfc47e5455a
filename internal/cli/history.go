package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/internal/catalog"
)

func (a *app) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List borrow and return transactions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSONList(cmd.OutOrStdout(), cat.Transactions())
			}
			writeTransactions(cmd.OutOrStdout(), cat.Transactions())
			return nil
		},
	}
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the data file strictly and verify catalog invariants",
		Long: `Check loads the data file without the fail-open fallback: a missing file
is fine, but an unreadable or malformed one is reported as an error. It then
verifies that loan counts agree between books and members.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog(catalog.WithLoadPolicy(catalog.LoadFailClosed))
			if err != nil {
				return err
			}
			if err := cat.Verify(); err != nil {
				return sysError(err)
			}

			s := cat.Stats()
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"path":         cat.Store().Path(),
					"books":        s.Books,
					"copies":       s.Copies,
					"on_loan":      s.OnLoan,
					"members":      s.Members,
					"transactions": s.Transactions,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d books (%d copies, %d on loan), %d members, %d transactions\n",
				s.Books, s.Copies, s.OnLoan, s.Members, s.Transactions)
			return nil
		},
	}
}
