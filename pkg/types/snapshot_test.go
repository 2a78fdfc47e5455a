package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	alice := NewMember(1, "Alice", "a@x.com", "555")
	alice.BorrowedBooks = []int{1}
	dune := NewBook(1, "Dune", "Herbert", "ISBN1", 2)
	dune.Available = 1
	return Snapshot{
		Books:        []Book{dune, NewBook(2, "Emma", "Austen", "ISBN2", 1)},
		Members:      []Member{alice, NewMember(2, "Bob", "b@x.com", "556")},
		Transactions: []Transaction{NewTransaction(1, 1, 1, TransactionBorrow, at)},
	}
}

func TestSnapshotDocumentRoundTrip(t *testing.T) {
	s := sampleSnapshot()
	got, err := SnapshotFromDocument(s.Document())
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSnapshotFromDocumentMissingKeys(t *testing.T) {
	got, err := SnapshotFromDocument(map[string][]map[string]any{})
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.NotNil(t, got.Books)
	assert.NotNil(t, got.Members)
	assert.NotNil(t, got.Transactions)
}

func TestSnapshotFromDocumentStopsOnBadEntity(t *testing.T) {
	doc := sampleSnapshot().Document()
	delete(doc[DocMembers][1], FieldEmail)

	_, err := SnapshotFromDocument(doc)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	s := sampleSnapshot()
	c := s.Clone()
	c.Members[0].BorrowedBooks[0] = 42
	c.Books[0].Available = 0

	assert.Equal(t, []int{1}, s.Members[0].BorrowedBooks)
	assert.Equal(t, 1, s.Books[0].Available)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrBookUnavailable))
	assert.True(t, IsValidation(ErrNotBorrowed))
	assert.False(t, IsValidation(ErrStructural))
	assert.False(t, IsValidation(nil))
}
