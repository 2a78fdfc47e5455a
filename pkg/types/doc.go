// Package types defines the catalog entities (Book, Member, Transaction), the
// Snapshot exchanged with persistence stores, the Store interface, and the
// standard errors for the library catalog.
//
// Entities are plain records. Each one serializes to a mapping of persisted
// field name to value (ToMap) and is rebuilt from such a mapping by the
// matching FromMap function, which rejects missing, unknown, or mistyped
// fields with ErrStructural.
package types
