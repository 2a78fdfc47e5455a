package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/library/pkg/types"
)

func TestVerify(t *testing.T) {
	alice := types.NewMember(1, "Alice", "a@x.com", "555")
	lent := types.NewBook(1, "Dune", "Herbert", "ISBN1", 2)
	lent.Available = 1

	tests := []struct {
		name    string
		snap    types.Snapshot
		wantErr bool
	}{
		{
			name: "empty catalog",
		},
		{
			name: "consistent loan",
			snap: types.Snapshot{
				Books:   []types.Book{lent},
				Members: []types.Member{{MemberID: 1, Name: "Alice", BorrowedBooks: []int{1}}},
			},
		},
		{
			name: "available above quantity",
			snap: types.Snapshot{
				Books: []types.Book{{BookID: 1, Quantity: 1, Available: 2}},
			},
			wantErr: true,
		},
		{
			name: "copy out with no borrower",
			snap: types.Snapshot{
				Books:   []types.Book{lent},
				Members: []types.Member{alice},
			},
			wantErr: true,
		},
		{
			name: "borrower of unknown book",
			snap: types.Snapshot{
				Members: []types.Member{{MemberID: 1, BorrowedBooks: []int{7}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openCatalog(t, &memStore{snap: tt.snap})
			err := c.Verify()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInconsistent)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStats(t *testing.T) {
	c := seeded(t, &memStore{})
	_, err := c.BorrowBook(1, 1)
	require.NoError(t, err)

	assert.Equal(t, Stats{Books: 1, Copies: 2, OnLoan: 1, Members: 1, Transactions: 1}, c.Stats())
}
