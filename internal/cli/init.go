package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/library/internal/paths"
	"github.com/mesh-intelligence/library/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend     string `yaml:"backend"`
	DataFile    string `yaml:"data_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

func (a *app) newInitCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and an empty catalog",
		Long:  "Create the configuration directory and config.yaml, then create an empty data file if none exists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", types.BackendJSON, "storage backend (json, sqlite)")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, backend string) error {
	if err := (types.Config{Backend: backend}).Validate(); err != nil {
		return userError("backend %q: %s", backend, err)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, configFile{Backend: backend, DataFile: a.flags.dataFile})
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if written {
		// Re-read so the backend chosen here applies below.
		if a.config, err = loadConfig(configDir); err != nil {
			return sysError(fmt.Errorf("load config: %w", err))
		}
	}

	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.DataFile); os.IsNotExist(err) {
		if err := newStore(cfg).Save(types.Snapshot{}); err != nil {
			return sysError(fmt.Errorf("initialize storage: %w", err))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Library initialized: %s (%s)\n", cfg.DataFile, cfg.Backend)
	return nil
}

// writeConfigIfMissing creates config.yaml if the file does not exist. It
// reports whether it wrote the file; an existing file is left untouched.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	return true, os.WriteFile(path, data, 0o644)
}
