package types

// Top-level keys of the persisted document.
const (
	DocBooks        = "books"
	DocMembers      = "members"
	DocTransactions = "transactions"
)

// Store persists a whole Snapshot. Every Save replaces the previous state
// wholesale; there are no partial updates.
type Store interface {
	// Load reads the persisted state. A missing backing file is not an
	// error: Load returns an empty Snapshot.
	Load() (Snapshot, error)

	// Save replaces the persisted state with s.
	Save(s Snapshot) error

	// Path returns the backing file location.
	Path() string
}
