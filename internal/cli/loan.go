package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/internal/catalog"
)

// loanFunc is BorrowBook or ReturnBook.
type loanFunc func(c *catalog.Catalog, memberID, bookID int) (catalog.Loan, error)

func (a *app) newBorrowCmd() *cobra.Command {
	return a.newLoanCmd("borrow", "Lend a copy of a book to a member", (*catalog.Catalog).BorrowBook)
}

func (a *app) newReturnCmd() *cobra.Command {
	return a.newLoanCmd("return", "Take back a copy of a book from a member", (*catalog.Catalog).ReturnBook)
}

func (a *app) newLoanCmd(use, short string, op loanFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <member-id> <book-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := parseID("member ID", args[0])
			if err != nil {
				return err
			}
			bookID, err := parseID("book ID", args[1])
			if err != nil {
				return err
			}

			cat, err := a.openCatalog()
			if err != nil {
				return err
			}

			loan, err := op(cat, memberID, bookID)
			if err != nil {
				return validationError(err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), loan.Transaction.ToMap())
			}
			fmt.Fprintln(cmd.OutOrStdout(), catalog.Lent(loan, nil).Message)
			return nil
		},
	}
}

func parseID(what, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, userError("invalid %s %q: must be an integer", what, s)
	}
	return id, nil
}
