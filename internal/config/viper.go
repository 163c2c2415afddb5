package config

import (
	"fmt"
	"os"
	"strings"

	"azops/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// parameterSource tracks where each parameter value came from
type parameterSource struct {
	Key    string
	Value  interface{}
	Source string
}

// getParameterSource determines where a parameter value came from (config file, env var, flag, or default)
func getParameterSource(key string, cmd *cobra.Command) parameterSource {
	value := viper.Get(key)
	envKey := "AZOPS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

	// Map config keys to flag names
	flagNames := map[string]string{
		"azure.resource_group": "resource-group",
		"azure.location":       "location",
		"app.log_format":       "log-format",
		"app.log_level":        "log-level",
		"costs.days":           "days",
		"deploy.sku":           "sku",
	}

	flagName := flagNames[key]
	if flagName == "" {
		flagName = strings.Replace(key, ".", "-", -1)
	}

	// Check if flag was set on command line - check both local and persistent flags
	if cmd != nil {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			return parameterSource{key, value, "command line flag"}
		}

		current := cmd
		for current != nil {
			if f := current.PersistentFlags().Lookup(flagName); f != nil && f.Changed {
				return parameterSource{key, value, "command line flag"}
			}
			current = current.Parent()
		}
	}

	if _, exists := os.LookupEnv(envKey); exists {
		return parameterSource{key, value, "environment variable"}
	}

	if viper.GetViper().InConfig(key) {
		return parameterSource{key, value, "config file"}
	}

	return parameterSource{key, value, "default value"}
}

// LogConfigurationSources logs the source of each configuration parameter
func LogConfigurationSources(shouldLog bool, cmd *cobra.Command) {
	if !shouldLog {
		return
	}

	logging.Debug("Configuration parameter sources:", nil)

	params := []string{
		"azure.resource_group",
		"azure.location",
		"app.log_format",
		"app.log_level",
		"costs.days",
		"deploy.sku",
	}

	for _, param := range params {
		source := getParameterSource(param, cmd)
		logging.Debug(fmt.Sprintf("  %s = %v (from %s)", source.Key, source.Value, source.Source), nil)
	}
}

// InitConfig initializes the Viper configuration
func InitConfig(shouldLog bool, cmd *cobra.Command) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config search paths
	viper.AddConfigPath(".") // Current directory only

	viper.SetEnvPrefix("AZOPS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Set defaults for all configuration values
	viper.SetDefault("azure.resource_group", "")
	viper.SetDefault("azure.location", "eastus")
	viper.SetDefault("app.log_format", "text")
	viper.SetDefault("app.log_level", "INFO")
	viper.SetDefault("costs.days", 30)
	viper.SetDefault("deploy.sku", "B1")

	// Try to read config file but don't error if not found
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if shouldLog {
			logging.Debug("No config file found, using defaults and environment variables", nil)
		}
	} else if shouldLog {
		logging.Debug("Loaded config file", map[string]interface{}{
			"path": viper.ConfigFileUsed(),
		})
	}

	return nil
}

// SetConfigFile sets a custom config file path and reloads the configuration
func SetConfigFile(configFile string) error {
	viper.SetConfigFile(configFile)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}
