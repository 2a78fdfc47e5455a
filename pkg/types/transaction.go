package types

import (
	"fmt"
	"time"
)

// Transaction kinds.
const (
	TransactionBorrow = "borrow"
	TransactionReturn = "return"
)

// DateLayout is the local-time layout of Transaction.Date.
const DateLayout = "2006-01-02 15:04:05"

// Transaction field names as persisted.
const (
	FieldTransactionID   = "transaction_id"
	FieldTransactionType = "transaction_type"
	FieldDate            = "date"
)

var transactionFields = []string{FieldTransactionID, FieldMemberID, FieldBookID, FieldTransactionType, FieldDate}

// Transaction records one borrow or return. Transactions are append-only.
type Transaction struct {
	TransactionID   int
	MemberID        int
	BookID          int
	TransactionType string
	Date            string
}

// NewTransaction returns a Transaction dated at the given instant.
func NewTransaction(id, memberID, bookID int, kind string, at time.Time) Transaction {
	return Transaction{
		TransactionID:   id,
		MemberID:        memberID,
		BookID:          bookID,
		TransactionType: kind,
		Date:            at.Format(DateLayout),
	}
}

// ToMap returns the persisted mapping of the transaction.
func (t Transaction) ToMap() map[string]any {
	return map[string]any{
		FieldTransactionID:   t.TransactionID,
		FieldMemberID:        t.MemberID,
		FieldBookID:          t.BookID,
		FieldTransactionType: t.TransactionType,
		FieldDate:            t.Date,
	}
}

// TransactionFromMap rebuilds a Transaction from its persisted mapping.
func TransactionFromMap(m map[string]any) (Transaction, error) {
	const entity = "transaction"
	if err := checkFields(entity, m, transactionFields); err != nil {
		return Transaction{}, err
	}

	var (
		t   Transaction
		err error
	)
	if t.TransactionID, err = intField(entity, m, FieldTransactionID); err != nil {
		return Transaction{}, err
	}
	if t.MemberID, err = intField(entity, m, FieldMemberID); err != nil {
		return Transaction{}, err
	}
	if t.BookID, err = intField(entity, m, FieldBookID); err != nil {
		return Transaction{}, err
	}
	if t.TransactionType, err = stringField(entity, m, FieldTransactionType); err != nil {
		return Transaction{}, err
	}
	if t.TransactionType != TransactionBorrow && t.TransactionType != TransactionReturn {
		return Transaction{}, fmt.Errorf("%w: %s: unknown transaction type %q", ErrStructural, entity, t.TransactionType)
	}
	if t.Date, err = stringField(entity, m, FieldDate); err != nil {
		return Transaction{}, err
	}
	return t, nil
}
