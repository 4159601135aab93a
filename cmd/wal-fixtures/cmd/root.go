package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/configuration"
	"github.com/backbone81/wal-fixtures/internal/fixture"
	"github.com/backbone81/wal-fixtures/internal/logging"
)

var (
	configFilePath  string
	directory       string
	logLevel        string
	metricsFilePath string

	// config holds the configuration of the current invocation after flags have been applied.
	config *configuration.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wal-fixtures",
	Short: "A tool for generating write-ahead log fixture files.",
	Long: `A tool for generating write-ahead log fixture files.

Every fixture file is a concatenation of entries. Each entry consists of the key length, the key, the value length,
the value and a timestamp in microseconds. Lengths and timestamps are unsigned 64-bit little-endian integers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := logging.Init(config.Logging); err != nil {
			return err
		}
		logging.Debug("Using configuration",
			zap.String("config", configFilePath),
			zap.String("directory", config.Directory),
		)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := executeContext(ctx)
	stop()
	_ = logging.Sync()
	if err != nil {
		logging.Fatal("Command failed", zap.Error(err))
	}
}

// executeContext runs the command line and writes the metrics file afterward, also when the command failed.
func executeContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if metricsErr := writeMetrics(); metricsErr != nil {
		logging.Error("Writing the metrics file failed", zap.String("file", metricsFilePath), zap.Error(metricsErr))
		err = errors.Join(err, metricsErr)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config",
		"c",
		"",
		"The YAML configuration file to read. Built-in defaults are used when not given.",
	)

	rootCmd.PersistentFlags().StringVarP(
		&directory,
		"directory",
		"d",
		fixture.DefaultDirectory,
		"The directory the fixture files are located in.",
	)

	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"info",
		"The log level to use. Valid values are debug, info, warn, error.",
	)

	rootCmd.PersistentFlags().StringVar(
		&metricsFilePath,
		"metrics-file",
		"",
		"Writes the metrics of the run in the Prometheus text format to this file when the command finishes.",
	)
}

// loadConfig reads the configuration file if one was given and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*configuration.Config, error) {
	result := configuration.DefaultConfig()
	if configFilePath != "" {
		var err error
		if result, err = configuration.LoadConfig(configFilePath); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("directory") {
		result.Directory = directory
	}
	if cmd.Flags().Changed("log-level") {
		result.Logging.Level = logLevel
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// writeMetrics writes all fixture metrics to the metrics file if one was requested.
func writeMetrics() error {
	if metricsFilePath == "" {
		return nil
	}

	registry := prometheus.NewRegistry()
	if err := fixture.RegisterMetrics(registry); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(metricsFilePath, registry)
}
