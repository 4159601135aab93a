package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/backbone81/wal-fixtures/internal/generator"
)

var fixedDelay time.Duration

// fixedCmd represents the fixed command.
var fixedCmd = &cobra.Command{
	Use:   "fixed",
	Short: "Writes one fixture file per configured entry.",
	Long: `Writes one fixture file per configured entry.

Every entry of the configuration ends up in its own fixture file, named after the time of its creation. The command
pauses between two files so that they carry clearly distinct timestamps.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("delay") {
			config.Fixed.Delay = fixedDelay
		}
		if config.Fixed.Delay < 0 {
			return fmt.Errorf("the delay must not be negative, got %s", config.Fixed.Delay)
		}

		results, err := generator.RunFixed(cmd.Context(), config.Directory, generator.FixedConfig{
			Entries:         config.Fixed.Entries,
			Delay:           config.Fixed.Delay,
			CreateDirectory: true,
		})
		for _, result := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\n", result.FilePath, result.Size)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(fixedCmd)

	fixedCmd.Flags().DurationVar(
		&fixedDelay,
		"delay",
		generator.DefaultFixedDelay,
		"The pause between two fixture files.",
	)
}
