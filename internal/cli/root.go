package cli

import (
	"fmt"
	"os"

	"github.com/Domenick1991/cargoeta/config"
	"github.com/spf13/cobra"
)

// ConfigLoader supplies the configuration the commands build their services from.
type ConfigLoader func() (*config.Config, error)

// NewRootCommand creates the etactl root command
func NewRootCommand(load ConfigLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "etactl",
		Short: "Container lookup and arrival estimates from the command line",
		Long: `etactl answers the same questions as the HTTP API over the configured
in-memory port and container tables.

Examples:
  etactl eta --origin Shanghai --destination NewYork --departure 2024-03-01T12:00:00+08:00
  etactl eta --origin Shanghai --destination Hamburg --departure 2024-10-20T08:00:00Z --days 32
  etactl container OOCL123`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewEtaCommand(load))
	rootCmd.AddCommand(NewContainerCommand(load))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand(config.Load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
