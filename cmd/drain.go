package cmd

import (
	"fmt"

	"retail-storage/core/broker"
	"retail-storage/core/config"
	"retail-storage/core/logger"
	"retail-storage/feature/order"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var drainMax int

// drainCmd pulls pending transaction messages from the queue.
var drainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Drain pending transaction messages",
	Long: `Receives pending transaction messages from the queue and prints them.
Messages are removed on receipt and will not be redelivered.`,
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

		client, err := broker.NewClient(cfg.Broker, logg)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer client.Close()

		queue := order.NewQueue(client, cfg.Broker.Queue, logg)
		messages := queue.ReceiveBatch(ctx, drainMax)

		logg.Info("Queue drained", zap.Int("count", len(messages)))
		for _, msg := range messages {
			fmt.Println(msg)
		}
		return nil
	},
}

func init() {
	drainCmd.Flags().IntVar(&drainMax, "max", order.DefaultReceiveBatch, "maximum messages to receive")
	RootCmd.AddCommand(drainCmd)
}
