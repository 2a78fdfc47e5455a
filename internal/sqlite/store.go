package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/library/pkg/types"
)

// listCodec encodes the borrowed_books column.
var listCodec = jsoniter.Config{UseNumber: true}.Froze()

// Store persists a Snapshot in a SQLite database file.
type Store struct {
	path string
}

var _ types.Store = (*Store)(nil)

// New returns a Store backed by the SQLite file at path. An empty path
// selects types.DefaultSQLiteFile in the working directory.
func New(path string) *Store {
	if path == "" {
		path = types.DefaultSQLiteFile
	}
	return &Store{path: path}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// open connects to the database for writing and ensures the schema exists.
func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema in %s: %w", s.path, err)
		}
	}
	return db, nil
}

// openReadOnly connects with mode=ro so loading never writes to the file.
func (s *Store) openReadOnly() (*sql.DB, error) {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", s.path, err)
	}
	dsn := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	return db, nil
}

// Load reads every table in position order without modifying the file. A
// missing or zero-byte database file yields an empty Snapshot; Load does not
// create it or write a schema into it.
func (s *Store) Load() (types.Snapshot, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Snapshot{}.Clone(), nil
	} else if err != nil {
		return types.Snapshot{}, fmt.Errorf("stat %s: %w", s.path, err)
	}
	if info.Size() == 0 {
		return types.Snapshot{}.Clone(), nil
	}

	db, err := s.openReadOnly()
	if err != nil {
		return types.Snapshot{}, err
	}
	defer db.Close()

	return loadSnapshot(db)
}

// Save replaces the stored state with snap in one SQL transaction. On any
// failure the transaction rolls back and the previous state stays intact.
func (s *Store) Save(snap types.Snapshot) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range tableNames {
		if _, err := tx.Exec("DELETE FROM " + name); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	if err := insertBooks(tx, snap.Books); err != nil {
		return err
	}
	if err := insertMembers(tx, snap.Members); err != nil {
		return err
	}
	if err := insertTransactions(tx, snap.Transactions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

func insertBooks(tx *sql.Tx, books []types.Book) error {
	stmt, err := tx.Prepare(`INSERT INTO books (position, book_id, title, author, isbn, quantity, available)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert for books: %w", err)
	}
	defer stmt.Close()

	for i, b := range books {
		if _, err := stmt.Exec(i, b.BookID, b.Title, b.Author, b.ISBN, b.Quantity, b.Available); err != nil {
			return fmt.Errorf("inserting book %d: %w", b.BookID, err)
		}
	}
	return nil
}

func insertMembers(tx *sql.Tx, members []types.Member) error {
	stmt, err := tx.Prepare(`INSERT INTO members (position, member_id, name, email, phone, borrowed_books)
        VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert for members: %w", err)
	}
	defer stmt.Close()

	for i, m := range members {
		borrowed := m.BorrowedBooks
		if borrowed == nil {
			borrowed = []int{}
		}
		list, err := listCodec.MarshalToString(borrowed)
		if err != nil {
			return fmt.Errorf("encoding borrowed books of member %d: %w", m.MemberID, err)
		}
		if _, err := stmt.Exec(i, m.MemberID, m.Name, m.Email, m.Phone, list); err != nil {
			return fmt.Errorf("inserting member %d: %w", m.MemberID, err)
		}
	}
	return nil
}

func insertTransactions(tx *sql.Tx, txns []types.Transaction) error {
	stmt, err := tx.Prepare(`INSERT INTO transactions (position, transaction_id, member_id, book_id, transaction_type, date)
        VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert for transactions: %w", err)
	}
	defer stmt.Close()

	for i, t := range txns {
		if _, err := stmt.Exec(i, t.TransactionID, t.MemberID, t.BookID, t.TransactionType, t.Date); err != nil {
			return fmt.Errorf("inserting transaction %d: %w", t.TransactionID, err)
		}
	}
	return nil
}
