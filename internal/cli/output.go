package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/library/pkg/types"
)

var jsonOut = jsoniter.ConfigCompatibleWithStandardLibrary

// mapper is implemented by every entity type.
type mapper interface {
	ToMap() map[string]any
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := jsonOut.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeJSONList prints entities as a JSON array of their persisted mappings.
func writeJSONList[T mapper](w io.Writer, items []T) error {
	maps := make([]map[string]any, 0, len(items))
	for _, it := range items {
		maps = append(maps, it.ToMap())
	}
	return writeJSON(w, maps)
}

func writeBooks(w io.Writer, books []types.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books in the library.")
		return
	}
	fmt.Fprintln(w, "\n--- Library Books ---")
	for _, b := range books {
		fmt.Fprintf(w, "ID: %d, Title: %s, Author: %s, ISBN: %s, Available: %d/%d\n",
			b.BookID, b.Title, b.Author, b.ISBN, b.Available, b.Quantity)
	}
}

func writeMembers(w io.Writer, members []types.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No members registered.")
		return
	}
	fmt.Fprintln(w, "\n--- Library Members ---")
	for _, m := range members {
		fmt.Fprintf(w, "ID: %d, Name: %s, Email: %s, Phone: %s, Borrowed: %d\n",
			m.MemberID, m.Name, m.Email, m.Phone, len(m.BorrowedBooks))
	}
}

func writeTransactions(w io.Writer, txns []types.Transaction) {
	if len(txns) == 0 {
		fmt.Fprintln(w, "No transactions recorded.")
		return
	}
	fmt.Fprintln(w, "\n--- Transactions ---")
	for _, t := range txns {
		fmt.Fprintf(w, "ID: %d, Member: %d, Book: %d, Type: %s, Date: %s\n",
			t.TransactionID, t.MemberID, t.BookID, t.TransactionType, t.Date)
	}
}
