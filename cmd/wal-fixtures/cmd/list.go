package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/backbone81/wal-fixtures/internal/fixture"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "Lists the fixture files in the directory.",
	Long:         `Lists the fixture files in the directory, oldest first.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		timestamps, err := fixture.GetFixtures(config.Directory)
		if err != nil {
			return err
		}

		for _, timestamp := range timestamps {
			filePath := fixture.FilePath(config.Directory, timestamp)
			fileInfo, err := os.Stat(filePath)
			if err != nil {
				return err
			}
			created := time.UnixMicro(int64(timestamp)).UTC().Format(time.RFC3339Nano) //nolint:gosec // file names never exceed int64
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d bytes\n", filePath, created, fileInfo.Size())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
