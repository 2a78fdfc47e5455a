package types

import "errors"

// Config holds backend selection and the backing file for a Store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataFile string `json:"data_file" yaml:"data_file"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default backing file names, relative to the working directory.
const (
	DefaultJSONFile   = "library_data.json"
	DefaultSQLiteFile = "library.db"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty DataFile is valid; stores fall back
// to the backend's default file name.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// DefaultDataFile returns the default backing file name for the backend.
func (c Config) DefaultDataFile() string {
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultJSONFile
}
