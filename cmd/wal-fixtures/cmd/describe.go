package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/backbone81/wal-fixtures/internal/fixture"
)

// describeCmd represents the describe command.
var describeCmd = &cobra.Command{
	Use:   "describe [file...]",
	Short: "Provides detailed information about fixture files.",
	Long: `Provides detailed information about fixture files.

Decodes every entry of the given fixture files, or of all fixture files in the directory when no file is given. The
command fails when a file contains bytes which do not form a complete entry.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filePaths := args
		if len(filePaths) == 0 {
			timestamps, err := fixture.GetFixtures(config.Directory)
			if err != nil {
				return err
			}
			if len(timestamps) == 0 {
				return fmt.Errorf("no fixture found in %q", config.Directory)
			}
			for _, timestamp := range timestamps {
				filePaths = append(filePaths, fixture.FilePath(config.Directory, timestamp))
			}
		}

		for _, filePath := range filePaths {
			if err := describeFixture(cmd.OutOrStdout(), filePath); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeFixture(output io.Writer, filePath string) (err error) {
	reader, err := fixture.OpenFixture(filePath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, reader.Close())
	}()

	fmt.Fprintf(output, "Fixture:   %s\n", reader.FilePath())
	entries := 0
	for reader.Next() {
		offset := reader.Offset() - reader.Value().Size()
		entry := reader.Value()
		timestamp := time.UnixMicro(int64(entry.Timestamp)).UTC().Format(time.RFC3339Nano) //nolint:gosec // only for display
		fmt.Fprintf(output, "Offset:    %d\n", offset)
		fmt.Fprintf(output, "Key:       %q\n", entry.Key)
		fmt.Fprintf(output, "Value:     %q\n", entry.Value)
		fmt.Fprintf(output, "Timestamp: %d (%s)\n", entry.Timestamp, timestamp)
		fmt.Fprintf(output, "Size:      %d\n", entry.Size())
		fmt.Fprintln(output)
		entries++
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("fixture %q: %w", filePath, err)
	}
	fmt.Fprintf(output, "Entries:   %d\n", entries)
	fmt.Fprintf(output, "Bytes:     %d\n\n", reader.Offset())
	return nil
}
