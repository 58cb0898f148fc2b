package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	cfg    *config.SchedulerConfig
)

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling simulator",
		Long:  "schedsim simulates FCFS, SJN, Round Robin, Rate Monotonic and EDF scheduling over synthetic process sets.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if flagDebug {
				level = "debug"
			}
			format := cfg.LogFormat
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			logger = logging.NewLogger(logging.ParseLevel(level), format)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml if present)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", logging.FormatText, "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newGenerateCmd(),
		newServeCmd(),
		newSubmitCmd(),
	)

	return root
}
