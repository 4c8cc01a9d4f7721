package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aexlabs/servicesync/internal/config"
	"github.com/aexlabs/servicesync/internal/extract"
	"github.com/aexlabs/servicesync/internal/fno"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Pull recent service changes into the snapshot artifact",
	Long: `Pulls service changes updated within the lookback window from the
AEX API, enriches each with service, customer, work-order and product
data, and writes the composite records to the snapshot file.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.StageExtract); err != nil {
		return err
	}

	ctx := cmd.Context()
	records, report := extractStage(ctx, cfg)

	// Snapshot write failure is fatal even though extraction succeeded.
	if err := extract.WriteSnapshot(cfg.SnapshotPath, records); err != nil {
		return err
	}

	printExtractSummary(cmd, report)
	return nil
}

func extractStage(ctx context.Context, cfg config.Config) ([]extract.Composite, *extract.Report) {
	client := fno.NewClient(ctx, cfg.AEXBaseURL, cfg.AEXToken)
	windowStart := extract.WindowStart(cfg.LookbackHours)
	return extract.NewExtractor(client).Run(ctx, windowStart)
}

func printExtractSummary(cmd *cobra.Command, report *extract.Report) {
	cmd.Printf("Extraction run %s: %d pages, %d items, %d records, %d rejected\n",
		report.RunID, report.Pages, report.ItemsSeen, report.Records, len(report.Rejections))
}
