package catalog

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/library/pkg/types"
)

// Loan describes a completed borrow or return.
type Loan struct {
	Transaction types.Transaction
	Book        types.Book
	Member      types.Member
}

// AddBook appends a new book with every copy available and saves.
func (c *Catalog) AddBook(title, author, isbn string, quantity int) (book types.Book, err error) {
	defer func() { c.metrics.Observe(OpAddBook, err) }()

	if quantity < 0 {
		return types.Book{}, types.ErrInvalidQuantity
	}

	book = types.NewBook(c.nextBookID(), title, author, isbn, quantity)
	c.books = append(c.books, book)
	c.save()

	c.log.Info("book added", zap.Int("book_id", book.BookID), zap.String("title", title))
	return book, nil
}

// AddMember appends a new member with nothing on loan and saves.
func (c *Catalog) AddMember(name, email, phone string) (member types.Member, err error) {
	defer func() { c.metrics.Observe(OpAddMember, err) }()

	member = types.NewMember(c.nextMemberID(), name, email, phone)
	c.members = append(c.members, member)
	c.save()

	c.log.Info("member added", zap.Int("member_id", member.MemberID), zap.String("name", name))
	return cloneMember(member), nil
}

// BorrowBook lends one copy of bookID to memberID. It fails with
// ErrMemberNotFound, ErrBookNotFound, or ErrBookUnavailable, checked in that
// order, before changing anything.
func (c *Catalog) BorrowBook(memberID, bookID int) (loan Loan, err error) {
	defer func() { c.metrics.Observe(OpBorrow, err) }()

	mi := c.memberIndex(memberID)
	if mi < 0 {
		return Loan{}, types.ErrMemberNotFound
	}
	bi := c.bookIndex(bookID)
	if bi < 0 {
		return Loan{}, types.ErrBookNotFound
	}
	if c.books[bi].Available <= 0 {
		return Loan{}, types.ErrBookUnavailable
	}

	c.books[bi].Available--
	c.members[mi].BorrowedBooks = append(c.members[mi].BorrowedBooks, bookID)
	tx := c.record(memberID, bookID, types.TransactionBorrow)
	c.save()

	c.log.Info("book borrowed",
		zap.Int("member_id", memberID), zap.Int("book_id", bookID),
		zap.Int("transaction_id", tx.TransactionID))
	return Loan{Transaction: tx, Book: c.books[bi], Member: cloneMember(c.members[mi])}, nil
}

// ReturnBook takes back one copy of bookID from memberID. It fails with
// ErrMemberNotFound, ErrBookNotFound, or ErrNotBorrowed, checked in that
// order, before changing anything. Available is capped at Quantity.
func (c *Catalog) ReturnBook(memberID, bookID int) (loan Loan, err error) {
	defer func() { c.metrics.Observe(OpReturn, err) }()

	mi := c.memberIndex(memberID)
	if mi < 0 {
		return Loan{}, types.ErrMemberNotFound
	}
	bi := c.bookIndex(bookID)
	if bi < 0 {
		return Loan{}, types.ErrBookNotFound
	}
	pos := indexOf(c.members[mi].BorrowedBooks, bookID)
	if pos < 0 {
		return Loan{}, types.ErrNotBorrowed
	}

	// Hand-edited files can hold a loan against a fully available book;
	// available never exceeds quantity.
	if c.books[bi].Available < c.books[bi].Quantity {
		c.books[bi].Available++
	} else {
		c.log.Warn("returned copy was already counted as available",
			zap.Int("member_id", memberID), zap.Int("book_id", bookID))
	}
	borrowed := c.members[mi].BorrowedBooks
	c.members[mi].BorrowedBooks = append(borrowed[:pos:pos], borrowed[pos+1:]...)
	tx := c.record(memberID, bookID, types.TransactionReturn)
	c.save()

	c.log.Info("book returned",
		zap.Int("member_id", memberID), zap.Int("book_id", bookID),
		zap.Int("transaction_id", tx.TransactionID))
	return Loan{Transaction: tx, Book: c.books[bi], Member: cloneMember(c.members[mi])}, nil
}

// Books returns a copy of the books in insertion order.
func (c *Catalog) Books() []types.Book {
	return c.Snapshot().Books
}

// Members returns a copy of the members in insertion order.
func (c *Catalog) Members() []types.Member {
	return c.Snapshot().Members
}

// Transactions returns a copy of the transaction history, oldest first.
func (c *Catalog) Transactions() []types.Transaction {
	return c.Snapshot().Transactions
}

// Book looks up a book by ID.
func (c *Catalog) Book(id int) (types.Book, bool) {
	i := c.bookIndex(id)
	if i < 0 {
		return types.Book{}, false
	}
	return c.books[i], true
}

// Member looks up a member by ID.
func (c *Catalog) Member(id int) (types.Member, bool) {
	i := c.memberIndex(id)
	if i < 0 {
		return types.Member{}, false
	}
	return cloneMember(c.members[i]), true
}

// record appends a transaction dated now.
func (c *Catalog) record(memberID, bookID int, kind string) types.Transaction {
	tx := types.NewTransaction(c.nextTransactionID(), memberID, bookID, kind, c.now())
	c.transactions = append(c.transactions, tx)
	return tx
}

func (c *Catalog) bookIndex(id int) int {
	for i := range c.books {
		if c.books[i].BookID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) memberIndex(id int) int {
	for i := range c.members {
		if c.members[i].MemberID == id {
			return i
		}
	}
	return -1
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func cloneMember(m types.Member) types.Member {
	borrowed := make([]int, len(m.BorrowedBooks))
	copy(borrowed, m.BorrowedBooks)
	m.BorrowedBooks = borrowed
	return m
}
