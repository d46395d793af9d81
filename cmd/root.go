package cmd

import (
	"fmt"
	"os"

	"retail-storage/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "retail-storage",
	Short: "Retail Storage Gateway",
	Long: `Retail Storage Gateway unifies the record store, blob store, transaction
queue and report file share behind one service for the order workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format matches CLI expectations; debug level gets ISO8601
		// timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
