package config

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// ResourceGroup is the default resource group for commands that accept one
	ResourceGroup string

	// Location is the default Azure region for provisioning
	Location string

	// LogFormat is the format for logging
	LogFormat string
}

// Config is the global configuration instance
var Config = &GlobalConfig{
	Location: "eastus",
}
