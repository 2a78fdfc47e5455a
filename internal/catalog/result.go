package catalog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/library/pkg/types"
)

// Result is what an interactive caller shows after an operation.
type Result struct {
	OK      bool
	Message string
}

// failureMessages holds the user-facing text for each validation error.
var failureMessages = []struct {
	err error
	msg string
}{
	{types.ErrMemberNotFound, "Member not found!"},
	{types.ErrBookNotFound, "Book not found!"},
	{types.ErrBookUnavailable, "Book not available!"},
	{types.ErrNotBorrowed, "This book was not borrowed by this member!"},
	{types.ErrInvalidQuantity, "Quantity must not be negative!"},
}

// Failure returns the Result for a failed operation.
func Failure(err error) Result {
	for _, f := range failureMessages {
		if errors.Is(err, f.err) {
			return Result{Message: f.msg}
		}
	}
	return Result{Message: fmt.Sprintf("Error: %v", err)}
}

// BookAdded returns the Result of AddBook.
func BookAdded(b types.Book, err error) Result {
	if err != nil {
		return Failure(err)
	}
	return Result{OK: true, Message: fmt.Sprintf("Book '%s' added successfully!", b.Title)}
}

// MemberAdded returns the Result of AddMember.
func MemberAdded(m types.Member, err error) Result {
	if err != nil {
		return Failure(err)
	}
	return Result{OK: true, Message: fmt.Sprintf("Member '%s' added successfully!", m.Name)}
}

// Lent returns the Result of BorrowBook or ReturnBook.
func Lent(l Loan, err error) Result {
	if err != nil {
		return Failure(err)
	}
	verb := "borrowed"
	if l.Transaction.TransactionType == types.TransactionReturn {
		verb = "returned"
	}
	return Result{OK: true, Message: fmt.Sprintf("Book '%s' %s by %s", l.Book.Title, verb, l.Member.Name)}
}
