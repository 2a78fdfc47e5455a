package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/library/pkg/types"
)

var errDisk = errors.New("disk full")

// memStore is an in-memory types.Store that counts saves and can be told to
// fail.
type memStore struct {
	snap    types.Snapshot
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) Load() (types.Snapshot, error) {
	if s.loadErr != nil {
		return types.Snapshot{}, s.loadErr
	}
	return s.snap.Clone(), nil
}

func (s *memStore) Save(snap types.Snapshot) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = snap.Clone()
	return nil
}

func (s *memStore) Path() string { return "mem://library" }

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func openCatalog(t *testing.T, store types.Store, opts ...Option) *Catalog {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock())}, opts...)
	c, err := Open(store, opts...)
	require.NoError(t, err)
	return c
}

// seeded returns a catalog holding Dune (2 copies) and member Alice.
func seeded(t *testing.T, store types.Store) *Catalog {
	t.Helper()
	c := openCatalog(t, store)
	_, err := c.AddBook("Dune", "Herbert", "ISBN1", 2)
	require.NoError(t, err)
	_, err = c.AddMember("Alice", "a@x.com", "555")
	require.NoError(t, err)
	return c
}

// requireInvariants checks 0 <= available <= quantity and loan accounting.
func requireInvariants(t *testing.T, c *Catalog) {
	t.Helper()
	for _, b := range c.Books() {
		require.GreaterOrEqual(t, b.Available, 0)
		require.LessOrEqual(t, b.Available, b.Quantity)
	}
	require.NoError(t, c.Verify())
}
