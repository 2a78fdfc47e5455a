// Package cli implements the library command-line interface: one-shot
// subcommands for each catalog operation and the interactive menu that runs
// when no subcommand is given.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/library/internal/catalog"
	"github.com/mesh-intelligence/library/internal/jsonfile"
	"github.com/mesh-intelligence/library/internal/logging"
	"github.com/mesh-intelligence/library/internal/metrics"
	"github.com/mesh-intelligence/library/internal/paths"
	"github.com/mesh-intelligence/library/internal/sqlite"
	"github.com/mesh-intelligence/library/pkg/library"
	"github.com/mesh-intelligence/library/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataFile  string
	jsonMode  bool
}

// app is the per-invocation state shared by the subcommands.
type app struct {
	flags   rootFlags
	config  *viper.Viper
	log     *zap.Logger
	metrics *metrics.Metrics
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to a process exit code.
// Errors from cobra itself (unknown command, bad flags) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "library" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:     "library",
		Short:   "A library catalog manager",
		Long:    "Library tracks books, members, and borrow/return transactions in a local data file.\nRun without a subcommand for the interactive menu.",
		Version: library.Version,
		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: .library)")
	root.PersistentFlags().StringVar(&a.flags.dataFile, "data-file", "", "catalog data file (default: library_data.json)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newBookCmd())
	root.AddCommand(a.newMemberCmd())
	root.AddCommand(a.newBorrowCmd())
	root.AddCommand(a.newReturnCmd())
	root.AddCommand(a.newHistoryCmd())
	root.AddCommand(a.newCheckCmd())
	root.AddCommand(a.newMenuCmd())

	return root, a
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root, a := newRoot()
	os.Exit(run(root, a, os.Stderr))
}

// run executes root, then tears a down even when the command failed, and
// reports any error on stderr.
func run(root *cobra.Command, a *app, stderr io.Writer) int {
	err := root.Execute()
	if tErr := a.teardown(); tErr != nil && err == nil {
		err = tErr
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return exitCode(err)
}

// setup loads configuration and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	a.config = cfg

	log, err := logging.New(cfg.GetString(cfgKeyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return userError("config %s: %s", cfgKeyLogLevel, err)
	}
	a.log = log
	a.metrics = metrics.New()
	return nil
}

// teardown writes the metrics textfile when configured.
func (a *app) teardown() error {
	if a.log != nil {
		// Sync on a terminal stderr can fail with EINVAL; nothing is buffered.
		_ = a.log.Sync()
	}
	if a.config == nil || a.metrics == nil {
		return nil
	}
	path := a.config.GetString(cfgKeyMetricsFile)
	if path == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		return sysError(fmt.Errorf("write metrics: %w", err))
	}
	return nil
}

// storeConfig resolves the backend and data file for this invocation.
func (a *app) storeConfig() (types.Config, error) {
	cfg := types.Config{Backend: a.config.GetString(cfgKeyBackend)}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError("config %s %q: %s", cfgKeyBackend, cfg.Backend, err)
	}

	dataFile, err := paths.ResolveDataFile(a.flags.dataFile, a.config.GetString(cfgKeyDataFile), cfg.DefaultDataFile())
	if err != nil {
		return types.Config{}, sysError(fmt.Errorf("resolve data file: %w", err))
	}
	cfg.DataFile = dataFile
	return cfg, nil
}

// newStore returns the Store for cfg.
func newStore(cfg types.Config) types.Store {
	if cfg.Backend == types.BackendSQLite {
		return sqlite.New(cfg.DataFile)
	}
	return jsonfile.New(cfg.DataFile)
}

// openCatalog builds the store and loads the catalog.
func (a *app) openCatalog(opts ...catalog.Option) (*catalog.Catalog, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]catalog.Option{
		catalog.WithLogger(a.log),
		catalog.WithMetrics(a.metrics),
	}, opts...)

	cat, err := catalog.Open(newStore(cfg), opts...)
	if err != nil {
		return nil, sysError(err)
	}
	return cat, nil
}

// validationError converts a catalog error into a CLI error: validation
// failures are user errors, everything else is a system error.
func validationError(err error) error {
	if types.IsValidation(err) {
		return &exitError{code: exitUserError, err: errors.New(catalog.Failure(err).Message)}
	}
	return sysError(err)
}
