// Package jsonfile implements the flat-file Store: the whole catalog is one
// JSON document that is rewritten wholesale on every Save.
package jsonfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/library/pkg/types"
)

// codec decodes numbers as json.Number so integer fields survive without a
// float64 detour. Unknown top-level keys are ignored.
var codec = jsoniter.Config{
	EscapeHTML: true,
	UseNumber:  true,
}.Froze()

// indent is the pretty-print indentation of the document.
const indent = "    "

// Store persists a Snapshot as a single JSON document at a fixed path.
type Store struct {
	path string
}

var _ types.Store = (*Store)(nil)

// New returns a Store backed by path. An empty path selects
// types.DefaultJSONFile in the working directory.
func New(path string) *Store {
	if path == "" {
		path = types.DefaultJSONFile
	}
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// inDocument is the decoded shape. Entities stay as mappings so that
// types.SnapshotFromDocument can reject missing and unknown fields.
type inDocument struct {
	Books        []map[string]any `json:"books"`
	Members      []map[string]any `json:"members"`
	Transactions []map[string]any `json:"transactions"`
}

// Load reads and decodes the backing file. A missing file yields an empty
// Snapshot and no error.
func (s *Store) Load() (types.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Snapshot{}.Clone(), nil
	}
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return decode(data)
}

// Save encodes snap and atomically replaces the backing file with it.
func (s *Store) Save(snap types.Snapshot) error {
	data, err := encode(snap)
	if err != nil {
		return err
	}
	return writeAtomic(s.path, data)
}

func decode(data []byte) (types.Snapshot, error) {
	var doc inDocument
	if err := codec.Unmarshal(data, &doc); err != nil {
		return types.Snapshot{}, fmt.Errorf("parsing document: %w", err)
	}
	snap, err := types.SnapshotFromDocument(map[string][]map[string]any{
		types.DocBooks:        doc.Books,
		types.DocMembers:      doc.Members,
		types.DocTransactions: doc.Transactions,
	})
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("decoding document: %w", err)
	}
	return snap, nil
}

func encode(snap types.Snapshot) ([]byte, error) {
	data, err := codec.MarshalIndent(toOutDocument(snap), "", indent)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

// writeAtomic writes data to path using the temp-file, fsync, rename
// pattern. The temp file lives next to path so the rename stays on one
// filesystem.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
