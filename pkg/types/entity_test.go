package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookStartsFullyAvailable(t *testing.T) {
	b := NewBook(1, "Dune", "Herbert", "ISBN1", 2)
	assert.Equal(t, 2, b.Quantity)
	assert.Equal(t, 2, b.Available)
}

func TestNewMemberHasEmptyBorrowedList(t *testing.T) {
	m := NewMember(1, "Alice", "a@x.com", "555")
	require.NotNil(t, m.BorrowedBooks)
	assert.Empty(t, m.BorrowedBooks)
	assert.Equal(t, []int{}, m.ToMap()[FieldBorrowedBooks])
}

func TestNewTransactionFormatsDate(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	tx := NewTransaction(3, 1, 2, TransactionBorrow, at)
	assert.Equal(t, "2024-03-09 07:05:01", tx.Date)
}

func TestMemberHasBorrowed(t *testing.T) {
	m := NewMember(1, "Alice", "a@x.com", "555")
	m.BorrowedBooks = []int{4, 2}
	assert.True(t, m.HasBorrowed(2))
	assert.False(t, m.HasBorrowed(3))
}

func TestBookMapRoundTrip(t *testing.T) {
	b := Book{BookID: 7, Title: "Dune", Author: "Herbert", ISBN: "ISBN1", Quantity: 3, Available: 1}
	got, err := BookFromMap(b.ToMap())
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestMemberToMapCopiesBorrowedBooks(t *testing.T) {
	m := Member{MemberID: 1, Name: "Alice", BorrowedBooks: []int{1}}
	mapped := m.ToMap()
	mapped[FieldBorrowedBooks].([]int)[0] = 9
	assert.Equal(t, []int{1}, m.BorrowedBooks)
}

func TestFromMapAcceptsDecodedJSON(t *testing.T) {
	raw := `{"member_id": 2, "name": "Bob", "email": "b@x.com", "phone": "556", "borrowed_books": [1, 1, 3]}`

	t.Run("float64 numbers", func(t *testing.T) {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &m))
		got, err := MemberFromMap(m)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 3}, got.BorrowedBooks)
		assert.Equal(t, 2, got.MemberID)
	})

	t.Run("json.Number numbers", func(t *testing.T) {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		got, err := MemberFromMap(m)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 3}, got.BorrowedBooks)
	})
}

func TestFromMapStructuralErrors(t *testing.T) {
	book := func() map[string]any { return NewBook(1, "Dune", "Herbert", "ISBN1", 2).ToMap() }
	tx := func() map[string]any {
		return NewTransaction(1, 1, 1, TransactionReturn, time.Now()).ToMap()
	}

	tests := []struct {
		name  string
		build func() error
	}{
		{
			name: "nil mapping",
			build: func() error {
				_, err := BookFromMap(nil)
				return err
			},
		},
		{
			name: "missing field",
			build: func() error {
				m := book()
				delete(m, FieldISBN)
				_, err := BookFromMap(m)
				return err
			},
		},
		{
			name: "unknown field",
			build: func() error {
				m := book()
				m["publisher"] = "Chilton"
				_, err := BookFromMap(m)
				return err
			},
		},
		{
			name: "string where integer expected",
			build: func() error {
				m := book()
				m[FieldQuantity] = "2"
				_, err := BookFromMap(m)
				return err
			},
		},
		{
			name: "fractional number",
			build: func() error {
				m := book()
				m[FieldAvailable] = 1.5
				_, err := BookFromMap(m)
				return err
			},
		},
		{
			name: "integer where string expected",
			build: func() error {
				m := NewMember(1, "Alice", "a@x.com", "555").ToMap()
				m[FieldPhone] = 555
				_, err := MemberFromMap(m)
				return err
			},
		},
		{
			name: "borrowed books not a list",
			build: func() error {
				m := NewMember(1, "Alice", "a@x.com", "555").ToMap()
				m[FieldBorrowedBooks] = nil
				_, err := MemberFromMap(m)
				return err
			},
		},
		{
			name: "borrowed books with a string entry",
			build: func() error {
				m := NewMember(1, "Alice", "a@x.com", "555").ToMap()
				m[FieldBorrowedBooks] = []any{1.0, "2"}
				_, err := MemberFromMap(m)
				return err
			},
		},
		{
			name: "unknown transaction type",
			build: func() error {
				m := tx()
				m[FieldTransactionType] = "renew"
				_, err := TransactionFromMap(m)
				return err
			},
		},
		{
			name: "transaction missing date",
			build: func() error {
				m := tx()
				delete(m, FieldDate)
				_, err := TransactionFromMap(m)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.build(), ErrStructural)
		})
	}
}
