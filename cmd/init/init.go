package init

import (
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize azops configuration files",
		Long: `Initialize azops configuration files.

This command creates a default config.yaml with every supported setting
and its default value, ready to edit.`,
	}

	cmd.AddCommand(NewConfigCmd())

	return cmd
}
