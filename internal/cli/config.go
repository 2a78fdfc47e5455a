package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/library/internal/logging"
	"github.com/mesh-intelligence/library/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend     = "backend"
	cfgKeyDataFile    = "data_file"
	cfgKeyLogLevel    = "log_level"
	cfgKeyMetricsFile = "metrics_file"

	// envLogLevel overrides log_level from config.yaml.
	envLogLevel = "LIBRARY_LOG_LEVEL"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSON)
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyLogLevel, envLogLevel); err != nil {
		return nil, fmt.Errorf("bind %s: %w", envLogLevel, err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
