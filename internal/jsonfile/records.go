package jsonfile

import "github.com/mesh-intelligence/library/pkg/types"

// JSON record structures that mirror the file format. Field order here is
// the order written to disk.

// bookJSON represents a book in the books array.
type bookJSON struct {
	BookID    int    `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Quantity  int    `json:"quantity"`
	Available int    `json:"available"`
}

// memberJSON represents a member in the members array.
type memberJSON struct {
	MemberID      int    `json:"member_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BorrowedBooks []int  `json:"borrowed_books"`
}

// transactionJSON represents a transaction in the transactions array.
type transactionJSON struct {
	TransactionID   int    `json:"transaction_id"`
	MemberID        int    `json:"member_id"`
	BookID          int    `json:"book_id"`
	TransactionType string `json:"transaction_type"`
	Date            string `json:"date"`
}

// outDocument is the encoded shape of a Snapshot.
type outDocument struct {
	Books        []bookJSON        `json:"books"`
	Members      []memberJSON      `json:"members"`
	Transactions []transactionJSON `json:"transactions"`
}

func toOutDocument(snap types.Snapshot) outDocument {
	doc := outDocument{
		Books:        make([]bookJSON, 0, len(snap.Books)),
		Members:      make([]memberJSON, 0, len(snap.Members)),
		Transactions: make([]transactionJSON, 0, len(snap.Transactions)),
	}
	for _, b := range snap.Books {
		doc.Books = append(doc.Books, bookJSON(b))
	}
	for _, m := range snap.Members {
		borrowed := m.BorrowedBooks
		if borrowed == nil {
			borrowed = []int{}
		}
		doc.Members = append(doc.Members, memberJSON{
			MemberID:      m.MemberID,
			Name:          m.Name,
			Email:         m.Email,
			Phone:         m.Phone,
			BorrowedBooks: borrowed,
		})
	}
	for _, t := range snap.Transactions {
		doc.Transactions = append(doc.Transactions, transactionJSON(t))
	}
	return doc
}
