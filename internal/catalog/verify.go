package catalog

import (
	"errors"
	"fmt"
)

// ErrInconsistent reports loaded state that breaks a catalog invariant.
var ErrInconsistent = errors.New("inconsistent catalog")

// Verify checks the catalog invariants: 0 <= available <= quantity for every
// book, every borrowed ID names an existing book, and each book's copies on
// loan across all members equal quantity - available. Operations preserve
// these; Verify exists for state loaded from a file edited by hand.
func (c *Catalog) Verify() error {
	var problems []error

	onLoan := make(map[int]int, len(c.books))
	for _, m := range c.members {
		for _, id := range m.BorrowedBooks {
			if c.bookIndex(id) < 0 {
				problems = append(problems, fmt.Errorf("member %d holds unknown book %d", m.MemberID, id))
				continue
			}
			onLoan[id]++
		}
	}

	for _, b := range c.books {
		if b.Available < 0 || b.Available > b.Quantity {
			problems = append(problems, fmt.Errorf("book %d: available %d outside 0..%d", b.BookID, b.Available, b.Quantity))
			continue
		}
		if out := b.Quantity - b.Available; out != onLoan[b.BookID] {
			problems = append(problems, fmt.Errorf("book %d: %d copies out but %d on loan to members", b.BookID, out, onLoan[b.BookID]))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInconsistent, errors.Join(problems...))
}

// Stats summarizes the catalog for status output.
type Stats struct {
	Books        int
	Copies       int
	OnLoan       int
	Members      int
	Transactions int
}

// Stats returns collection counts.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Books:        len(c.books),
		Members:      len(c.members),
		Transactions: len(c.transactions),
	}
	for _, b := range c.books {
		s.Copies += b.Quantity
		s.OnLoan += b.Quantity - b.Available
	}
	return s
}
