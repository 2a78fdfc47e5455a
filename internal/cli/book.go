package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/internal/catalog"
)

func (a *app) newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add and list books",
	}
	cmd.AddCommand(a.newBookAddCmd())
	cmd.AddCommand(a.newBookListCmd())
	return cmd
}

func (a *app) newBookAddCmd() *cobra.Command {
	var (
		title, author, isbn string
		quantity            int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}

			book, err := cat.AddBook(title, author, isbn, quantity)
			if err != nil {
				return validationError(err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), book.ToMap())
			}
			fmt.Fprintln(cmd.OutOrStdout(), catalog.BookAdded(book, nil).Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&author, "author", "", "author name")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of copies owned")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (a *app) newBookListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSONList(cmd.OutOrStdout(), cat.Books())
			}
			writeBooks(cmd.OutOrStdout(), cat.Books())
			return nil
		},
	}
}
