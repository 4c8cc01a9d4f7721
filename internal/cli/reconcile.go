package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aexlabs/servicesync/internal/config"
	"github.com/aexlabs/servicesync/internal/extract"
	"github.com/aexlabs/servicesync/internal/hubspot"
	"github.com/aexlabs/servicesync/internal/reconcile"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Apply the snapshot to HubSpot contacts",
	Long: `Reads the snapshot written by extract and applies a sparse update
to the HubSpot contact matching each record's customer email. Records
without an email are skipped; failures are logged and the run continues.`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.StageReconcile); err != nil {
		return err
	}

	records, err := extract.ReadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return err
	}

	report := reconcileStage(cmd.Context(), cfg, records)
	printReconcileSummary(cmd, report)
	return nil
}

func reconcileStage(ctx context.Context, cfg config.Config, records []extract.Composite) *reconcile.Report {
	client := hubspot.NewClient(ctx, cfg.HubSpotBaseURL, cfg.HubSpotToken)
	return reconcile.NewEngine(client).Run(ctx, records)
}

func printReconcileSummary(cmd *cobra.Command, report *reconcile.Report) {
	cmd.Printf("Reconciliation run %s: %d updated, %d skipped (no email), %d not found, %d failed\n",
		report.RunID,
		report.Count(reconcile.StatusUpdated),
		report.Count(reconcile.StatusSkippedNoEmail),
		report.Count(reconcile.StatusContactNotFound),
		report.Count(reconcile.StatusUpdateFailed))
}
