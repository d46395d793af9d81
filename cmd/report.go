package cmd

import (
	"fmt"

	"retail-storage/core/config"
	"retail-storage/core/database"
	"retail-storage/core/logger"
	"retail-storage/core/storage"
	"retail-storage/feature/order"
	"retail-storage/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportType string

// reportCmd generates a report from the command line.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an order report",
	Long:  `Builds a CSV report over the current order snapshot and saves it to the report share.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		store := order.NewStore(db, cfg.Database.OrdersTable, logg)
		share := report.NewShare(client, cfg.Storage.ReportBucket, logg)
		svc := report.NewService(store, share, logg)

		result, ok := svc.Generate(ctx, reportType)
		if !ok {
			return fmt.Errorf("report generation failed")
		}

		logg.Info("Report generated", zap.String("file", result.FileName))
		fmt.Println(result.Content)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportType, "type", "Sales", "report type used in the title and file name")
	RootCmd.AddCommand(reportCmd)
}
