package cmd

import (
	"fmt"
	"os"

	"pfep-analyzer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pfep-analyzer",
	Short: "PFEP Inventory Analyzer",
	Long: `PFEP Analyzer matches a current-inventory snapshot against a PFEP
reference table and classifies every part as within norms, excess or short
at a configurable tolerance band.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format at debug level gets ISO8601 timestamps instead
		// of the production epoch encoding.
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
