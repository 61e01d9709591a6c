package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

// EnvPrefix is prepended to environment variable names, e.g. CONICAL_SERVER.
const EnvPrefix = "CONICAL"

// ConfigFileName is looked up in the home directory when --config is not given.
const ConfigFileName = ".conical-es.yaml"

// AddConnectionFlags registers the flags every command talking to the server
// takes.
func AddConnectionFlags(cmd *cobra.Command) {
	defaults := models.DefaultSettings()
	cmd.Flags().String("server", "", "The server to connect to (env CONICAL_SERVER)")
	cmd.Flags().String("token", "", "The access token to use (env CONICAL_TOKEN)")
	cmd.Flags().Duration("timeout", defaults.Timeout, "Timeout for each request to the server")
	cmd.Flags().String("config", "", "Config file (default $HOME/"+ConfigFileName+")")
}

// LoadSettings merges flags, environment and the config file. Flags win over
// the environment, which wins over the file.
func LoadSettings(cmd *cobra.Command) (*models.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := models.DefaultSettings()
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("output", defaults.Output)

	for _, name := range []string{"server", "token", "timeout"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read config file: %v", models.ErrConfiguration, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ConfigFileName))
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", models.ErrConfiguration, err)
		}
	}

	settings := models.DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("%w: invalid settings: %v", models.ErrConfiguration, err)
	}
	return settings, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
