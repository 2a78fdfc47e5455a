package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/library/pkg/types"
)

func sampleSnapshot() types.Snapshot {
	at := time.Date(2024, 5, 6, 10, 11, 12, 0, time.Local)
	dune := types.NewBook(1, "Dune", "Herbert", "ISBN1", 2)
	dune.Available = 0
	alice := types.NewMember(1, "Alice", "a@x.com", "555")
	alice.BorrowedBooks = []int{1, 1}
	return types.Snapshot{
		Books:   []types.Book{dune, types.NewBook(2, "Emma", "Austen", "ISBN2", 1)},
		Members: []types.Member{alice, types.NewMember(2, "Bob", "b@x.com", "556")},
		Transactions: []types.Transaction{
			types.NewTransaction(1, 1, 1, types.TransactionBorrow, at),
			types.NewTransaction(2, 1, 1, types.TransactionBorrow, at.Add(time.Minute)),
		},
	}
}

func TestNewDefaultsPath(t *testing.T) {
	assert.Equal(t, types.DefaultJSONFile, New("").Path())
	assert.Equal(t, "/tmp/x.json", New("/tmp/x.json").Path())
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "library_data.json"))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.True(t, snap.Empty())
	assert.NotNil(t, snap.Books)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")
	want := sampleSnapshot()

	require.NoError(t, New(path).Save(want))

	got, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveWritesDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")
	require.NoError(t, New(path).Save(sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 3)
	assert.Len(t, doc["books"], 2)
	assert.Len(t, doc["members"], 2)
	assert.Len(t, doc["transactions"], 2)
	assert.Equal(t, "borrow", doc["transactions"][0]["transaction_type"])
	assert.Equal(t, []any{1.0, 1.0}, doc["members"][0]["borrowed_books"])
	assert.Equal(t, []any{}, doc["members"][1]["borrowed_books"])

	text := string(data)
	assert.True(t, strings.Index(text, `"book_id"`) < strings.Index(text, `"title"`),
		"fields keep definition order")
	assert.True(t, strings.Index(text, `"books"`) < strings.Index(text, `"members"`))
	assert.Contains(t, text, "\n    \"books\"", "document is indented")
}

func TestSaveEmptySnapshotWritesEmptyArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")
	require.NoError(t, New(path).Save(types.Snapshot{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestSaveReplacesFileAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library_data.json")
	s := New(path)

	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Save(types.Snapshot{Books: []types.Book{types.NewBook(1, "Only", "One", "I", 1)}}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got.Books, 1)
	assert.Empty(t, got.Members)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be renamed or removed")
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "library_data.json")
	err := New(path).Save(sampleSnapshot())
	assert.Error(t, err)
}

func TestLoadMissingKeysDefaultEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")
	doc := `{"books": [{"book_id": 1, "title": "Dune", "author": "Herbert", "isbn": "ISBN1", "quantity": 2, "available": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	snap, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, snap.Books, 1)
	assert.Equal(t, "Dune", snap.Books[0].Title)
	assert.Empty(t, snap.Members)
	assert.Empty(t, snap.Transactions)
}

func TestLoadIgnoresUnknownTopLevelKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"books": [], "version": 2}`), 0o644))

	_, err := New(path).Load()
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		structural bool
	}{
		{name: "malformed JSON", content: `{"books": [`},
		{name: "wrong top-level type", content: `[1, 2, 3]`},
		{name: "books is not an array", content: `{"books": {"book_id": 1}}`},
		{
			name:       "member missing field",
			content:    `{"members": [{"member_id": 1, "name": "Alice", "email": "a@x.com", "borrowed_books": []}]}`,
			structural: true,
		},
		{
			name:       "transaction with unknown field",
			content:    `{"transactions": [{"transaction_id": 1, "member_id": 1, "book_id": 1, "transaction_type": "borrow", "date": "2024-01-01 00:00:00", "note": "x"}]}`,
			structural: true,
		},
		{
			name:       "book with fractional quantity",
			content:    `{"books": [{"book_id": 1, "title": "Dune", "author": "Herbert", "isbn": "ISBN1", "quantity": 2.5, "available": 2}]}`,
			structural: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library_data.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := New(path).Load()
			require.Error(t, err)
			if tt.structural {
				assert.ErrorIs(t, err, types.ErrStructural)
			}
		})
	}
}
