// Package sqlite implements a Store that keeps the catalog in a SQLite file.
// The file is opened for the duration of one Load or Save and closed before
// returning. Save replaces every row inside a single SQL transaction.
package sqlite

// Schema DDL for all tables. position preserves in-memory order across a
// Save/Load cycle.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    position INTEGER PRIMARY KEY,
    book_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    isbn TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    available INTEGER NOT NULL
);`

	createMembers = `CREATE TABLE IF NOT EXISTS members (
    position INTEGER PRIMARY KEY,
    member_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    borrowed_books TEXT NOT NULL
);`

	createTransactions = `CREATE TABLE IF NOT EXISTS transactions (
    position INTEGER PRIMARY KEY,
    transaction_id INTEGER NOT NULL,
    member_id INTEGER NOT NULL,
    book_id INTEGER NOT NULL,
    transaction_type TEXT NOT NULL,
    date TEXT NOT NULL
);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createBooks,
	createMembers,
	createTransactions,
}

// tableNames lists the tables cleared by Save, in deletion order.
var tableNames = []string{"books", "members", "transactions"}
