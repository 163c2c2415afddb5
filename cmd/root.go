package cmd

import (
	costsCmd "azops/cmd/costs"
	deployCmd "azops/cmd/deploy"
	initCmd "azops/cmd/init"
	statusCmd "azops/cmd/status"
	versionCmd "azops/cmd/version"
	"azops/internal/config"
	"azops/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	var (
		logLevel   string
		configFile string
	)

	// Initialize config
	if err := config.InitConfig(false, nil); err != nil {
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "azops",
		Short: "azops - Azure operations toolkit",
		Long: `azops is a command-line toolkit for everyday Azure operations.
It analyzes subscription costs, deploys web apps to App Service, and reports
the status of resources in a resource group, driving the az CLI underneath.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Set config file if specified
			if configFile != "" {
				if err := config.SetConfigFile(configFile); err != nil {
					logging.Error("Failed to load config file", err, map[string]interface{}{
						"path": configFile,
					})
				}
			}

			// Configure logging based on flags and config
			logFormat := logging.Text
			if config.Config.LogFormat == "json" || viper.GetString("app.log_format") == "json" {
				logFormat = logging.JSON
			}

			level := logging.ParseLevel(logLevel)
			logging.Configure(logging.LogConfig{
				Level:  level,
				Format: logFormat,
			})

			config.LogConfigurationSources(level == logging.DEBUG, cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&config.Config.LogFormat, "log-format", "text", "Log output format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Set logging level (DEBUG, INFO, WARN, ERROR)")

	// Add commands
	rootCmd.AddCommand(costsCmd.NewCostsCmd())
	rootCmd.AddCommand(deployCmd.NewDeployCmd())
	rootCmd.AddCommand(statusCmd.NewStatusCmd())
	rootCmd.AddCommand(initCmd.NewInitCmd())
	rootCmd.AddCommand(versionCmd.NewVersionCmd())

	return rootCmd.Execute()
}
