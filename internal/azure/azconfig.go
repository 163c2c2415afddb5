package azure

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// ConfigDefaults holds the defaults the az CLI itself keeps in its config file.
type ConfigDefaults struct {
	ResourceGroup string
	Location      string
}

// ReadConfigDefaults reads the [defaults] section of the az CLI's own config
// file (~/.azure/config, or $AZURE_CONFIG_DIR/config when set). A missing or
// unreadable file yields empty defaults, never an error: the CLI works fine
// without one and so do we.
func ReadConfigDefaults() ConfigDefaults {
	configDir := os.Getenv("AZURE_CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ConfigDefaults{}
		}
		configDir = filepath.Join(homeDir, ".azure")
	}

	configFile, err := ini.Load(filepath.Join(configDir, "config"))
	if err != nil {
		return ConfigDefaults{}
	}

	section := configFile.Section("defaults")
	return ConfigDefaults{
		ResourceGroup: section.Key("group").String(),
		Location:      section.Key("location").String(),
	}
}
