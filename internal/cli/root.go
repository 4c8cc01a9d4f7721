// Package cli wires the servicesync commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/aexlabs/servicesync/internal/logger"
)

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "servicesync",
	Short: "Sync AEX service changes into HubSpot contacts",
	Long: `servicesync pulls recently changed services from the AEX API,
enriches them with customer, work-order and product data, snapshots the
result, and reconciles selected fields into HubSpot contacts by email.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to TOML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
