package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/library/pkg/types"
)

func TestResults(t *testing.T) {
	dune := types.NewBook(1, "Dune", "Herbert", "ISBN1", 2)
	alice := types.NewMember(1, "Alice", "a@x.com", "555")

	tests := []struct {
		name   string
		result Result
		want   Result
	}{
		{"book added", BookAdded(dune, nil), Result{true, "Book 'Dune' added successfully!"}},
		{"member added", MemberAdded(alice, nil), Result{true, "Member 'Alice' added successfully!"}},
		{
			"borrowed",
			Lent(Loan{Book: dune, Member: alice, Transaction: types.Transaction{TransactionType: types.TransactionBorrow}}, nil),
			Result{true, "Book 'Dune' borrowed by Alice"},
		},
		{
			"returned",
			Lent(Loan{Book: dune, Member: alice, Transaction: types.Transaction{TransactionType: types.TransactionReturn}}, nil),
			Result{true, "Book 'Dune' returned by Alice"},
		},
		{"member not found", Lent(Loan{}, types.ErrMemberNotFound), Result{false, "Member not found!"}},
		{"book not found", Lent(Loan{}, types.ErrBookNotFound), Result{false, "Book not found!"}},
		{"unavailable", Lent(Loan{}, types.ErrBookUnavailable), Result{false, "Book not available!"}},
		{"not borrowed", Lent(Loan{}, types.ErrNotBorrowed), Result{false, "This book was not borrowed by this member!"}},
		{"wrapped validation", Failure(fmt.Errorf("borrow: %w", types.ErrBookNotFound)), Result{false, "Book not found!"}},
		{"other error", BookAdded(types.Book{}, errors.New("boom")), Result{false, "Error: boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result)
		})
	}
}
