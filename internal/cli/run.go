package cli

import (
	"github.com/spf13/cobra"

	"github.com/aexlabs/servicesync/internal/config"
	"github.com/aexlabs/servicesync/internal/extract"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run both pipeline stages in sequence",
	Long: `Runs extraction and then reconciliation in one process. Both
credentials are validated up front so a missing CRM token fails before
any extraction traffic.`,
	RunE: runBoth,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBoth(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.StageExtract); err != nil {
		return err
	}
	if err := cfg.Validate(config.StageReconcile); err != nil {
		return err
	}

	ctx := cmd.Context()

	records, extractReport := extractStage(ctx, cfg)
	if err := extract.WriteSnapshot(cfg.SnapshotPath, records); err != nil {
		return err
	}
	printExtractSummary(cmd, extractReport)

	report := reconcileStage(ctx, cfg, records)
	printReconcileSummary(cmd, report)
	return nil
}
