package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/library/pkg/types"
)

// loadSnapshot reads all three tables. Rows pass through the types FromMap
// functions so the SQLite backend enforces the same structural rules as the
// JSON document.
func loadSnapshot(db *sql.DB) (types.Snapshot, error) {
	doc := make(map[string][]map[string]any, 3)

	books, err := queryMaps(db, `SELECT book_id, title, author, isbn, quantity, available
        FROM books ORDER BY position`, scanBook)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("loading books: %w", err)
	}
	doc[types.DocBooks] = books

	members, err := queryMaps(db, `SELECT member_id, name, email, phone, borrowed_books
        FROM members ORDER BY position`, scanMember)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("loading members: %w", err)
	}
	doc[types.DocMembers] = members

	txns, err := queryMaps(db, `SELECT transaction_id, member_id, book_id, transaction_type, date
        FROM transactions ORDER BY position`, scanTransaction)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("loading transactions: %w", err)
	}
	doc[types.DocTransactions] = txns

	return types.SnapshotFromDocument(doc)
}

// queryMaps runs query and converts each row with scan.
func queryMaps(db *sql.DB, query string, scan func(*sql.Rows) (map[string]any, error)) ([]map[string]any, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanBook(rows *sql.Rows) (map[string]any, error) {
	var (
		id, quantity, available int64
		title, author, isbn     string
	)
	if err := rows.Scan(&id, &title, &author, &isbn, &quantity, &available); err != nil {
		return nil, err
	}
	return map[string]any{
		types.FieldBookID:    id,
		types.FieldTitle:     title,
		types.FieldAuthor:    author,
		types.FieldISBN:      isbn,
		types.FieldQuantity:  quantity,
		types.FieldAvailable: available,
	}, nil
}

func scanMember(rows *sql.Rows) (map[string]any, error) {
	var (
		id                        int64
		name, email, phone, lists string
	)
	if err := rows.Scan(&id, &name, &email, &phone, &lists); err != nil {
		return nil, err
	}
	var borrowed []any
	if err := listCodec.UnmarshalFromString(lists, &borrowed); err != nil {
		return nil, fmt.Errorf("%w: member %d: borrowed_books: %v", types.ErrStructural, id, err)
	}
	if borrowed == nil {
		borrowed = []any{}
	}
	return map[string]any{
		types.FieldMemberID:      id,
		types.FieldName:          name,
		types.FieldEmail:         email,
		types.FieldPhone:         phone,
		types.FieldBorrowedBooks: borrowed,
	}, nil
}

func scanTransaction(rows *sql.Rows) (map[string]any, error) {
	var (
		id, memberID, bookID int64
		kind, date           string
	)
	if err := rows.Scan(&id, &memberID, &bookID, &kind, &date); err != nil {
		return nil, err
	}
	return map[string]any{
		types.FieldTransactionID:   id,
		types.FieldMemberID:        memberID,
		types.FieldBookID:          bookID,
		types.FieldTransactionType: kind,
		types.FieldDate:            date,
	}, nil
}
