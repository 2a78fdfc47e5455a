package types

// Snapshot is the whole catalog state as exchanged with a Store. Each
// collection keeps insertion order.
type Snapshot struct {
	Books        []Book
	Members      []Member
	Transactions []Transaction
}

// Clone returns a deep copy of s. Empty collections come back non-nil.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Books:        make([]Book, len(s.Books)),
		Members:      make([]Member, len(s.Members)),
		Transactions: make([]Transaction, len(s.Transactions)),
	}
	copy(out.Books, s.Books)
	copy(out.Transactions, s.Transactions)
	for i, m := range s.Members {
		borrowed := make([]int, len(m.BorrowedBooks))
		copy(borrowed, m.BorrowedBooks)
		m.BorrowedBooks = borrowed
		out.Members[i] = m
	}
	return out
}

// Empty reports whether s holds no entities at all.
func (s Snapshot) Empty() bool {
	return len(s.Books) == 0 && len(s.Members) == 0 && len(s.Transactions) == 0
}

// Document returns the persisted document shape: the three top-level keys,
// each a sequence of entity mappings.
func (s Snapshot) Document() map[string][]map[string]any {
	doc := map[string][]map[string]any{
		DocBooks:        make([]map[string]any, 0, len(s.Books)),
		DocMembers:      make([]map[string]any, 0, len(s.Members)),
		DocTransactions: make([]map[string]any, 0, len(s.Transactions)),
	}
	for _, b := range s.Books {
		doc[DocBooks] = append(doc[DocBooks], b.ToMap())
	}
	for _, m := range s.Members {
		doc[DocMembers] = append(doc[DocMembers], m.ToMap())
	}
	for _, t := range s.Transactions {
		doc[DocTransactions] = append(doc[DocTransactions], t.ToMap())
	}
	return doc
}

// SnapshotFromDocument rebuilds a Snapshot from the persisted document shape.
// Missing keys yield empty collections. The first entity that fails to
// deserialize aborts the rebuild.
func SnapshotFromDocument(doc map[string][]map[string]any) (Snapshot, error) {
	s := Snapshot{
		Books:        make([]Book, 0, len(doc[DocBooks])),
		Members:      make([]Member, 0, len(doc[DocMembers])),
		Transactions: make([]Transaction, 0, len(doc[DocTransactions])),
	}
	for _, m := range doc[DocBooks] {
		b, err := BookFromMap(m)
		if err != nil {
			return Snapshot{}, err
		}
		s.Books = append(s.Books, b)
	}
	for _, m := range doc[DocMembers] {
		mem, err := MemberFromMap(m)
		if err != nil {
			return Snapshot{}, err
		}
		s.Members = append(s.Members, mem)
	}
	for _, m := range doc[DocTransactions] {
		t, err := TransactionFromMap(m)
		if err != nil {
			return Snapshot{}, err
		}
		s.Transactions = append(s.Transactions, t)
	}
	return s, nil
}
