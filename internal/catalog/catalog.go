// Package catalog owns the in-memory books, members, and transactions and
// implements the operations that mutate them. Every successful mutation is
// followed by a wholesale Save through the configured types.Store.
//
// Two error tiers apply. Validation failures (see types.IsValidation) are
// returned to the caller before any state changes and trigger no Save.
// Infrastructure failures are logged and absorbed: a failed Load starts the
// catalog empty under LoadFailOpen, and a failed Save leaves the in-memory
// state authoritative for the rest of the process.
package catalog

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/library/internal/metrics"
	"github.com/mesh-intelligence/library/pkg/types"
)

// LoadPolicy decides what Open does when the store cannot be read.
type LoadPolicy int

const (
	// LoadFailOpen logs the failure and starts with empty collections.
	// There is no retry; the next successful Save overwrites the unreadable
	// file.
	LoadFailOpen LoadPolicy = iota

	// LoadFailClosed returns the load error from Open.
	LoadFailClosed
)

// Operation names used for metrics.
const (
	OpAddBook   = "add_book"
	OpAddMember = "add_member"
	OpBorrow    = "borrow"
	OpReturn    = "return"
)

// Catalog is the single owner of the three collections. It is not safe for
// concurrent use.
type Catalog struct {
	store   types.Store
	log     *zap.Logger
	now     func() time.Time
	metrics *metrics.Metrics
	policy  LoadPolicy

	books        []types.Book
	members      []types.Member
	transactions []types.Transaction

	loadErr error
	saveErr error
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the operator logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMetrics enables operation counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// WithLoadPolicy overrides LoadFailOpen.
func WithLoadPolicy(p LoadPolicy) Option {
	return func(c *Catalog) {
		c.policy = p
	}
}

// Open creates a Catalog and loads its state from store.
func Open(store types.Store, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		store:  store,
		log:    zap.NewNop(),
		now:    time.Now,
		policy: LoadFailOpen,
	}
	for _, opt := range opts {
		opt(c)
	}

	snap, err := store.Load()
	if err != nil {
		c.metrics.LoadFailed()
		if c.policy == LoadFailClosed {
			return nil, fmt.Errorf("loading %s: %w", store.Path(), err)
		}
		c.log.Error("loading data, starting with an empty catalog",
			zap.String("path", store.Path()), zap.Error(err))
		c.loadErr = err
		snap = types.Snapshot{}
	}
	snap = snap.Clone()
	c.books = snap.Books
	c.members = snap.Members
	c.transactions = snap.Transactions

	if err := c.Verify(); err != nil {
		c.log.Warn("loaded catalog is inconsistent",
			zap.String("path", store.Path()), zap.Error(err))
	}

	c.log.Debug("catalog loaded",
		zap.String("path", store.Path()),
		zap.Int("books", len(c.books)),
		zap.Int("members", len(c.members)),
		zap.Int("transactions", len(c.transactions)))
	return c, nil
}

// LoadErr returns the error swallowed by a fail-open Open, or nil.
func (c *Catalog) LoadErr() error {
	return c.loadErr
}

// SaveErr returns the error from the most recent Save, or nil if it
// succeeded.
func (c *Catalog) SaveErr() error {
	return c.saveErr
}

// Store returns the backing store.
func (c *Catalog) Store() types.Store {
	return c.store
}

// Snapshot returns a deep copy of the current state.
func (c *Catalog) Snapshot() types.Snapshot {
	return types.Snapshot{
		Books:        c.books,
		Members:      c.members,
		Transactions: c.transactions,
	}.Clone()
}

// save flushes the whole state. Failures are logged and recorded, never
// returned.
func (c *Catalog) save() {
	err := c.store.Save(c.Snapshot())
	c.saveErr = err
	if err != nil {
		c.metrics.SaveFailed()
		c.log.Error("saving data, in-memory state is the only copy",
			zap.String("path", c.store.Path()), zap.Error(err))
	}
}
