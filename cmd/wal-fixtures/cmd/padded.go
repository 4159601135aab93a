package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/dictionary"
	"github.com/backbone81/wal-fixtures/internal/generator"
	"github.com/backbone81/wal-fixtures/internal/logging"
)

var (
	paddedThreshold  uint64
	paddedDictionary string
	paddedSeed       uint64
)

// paddedCmd represents the padded command.
var paddedCmd = &cobra.Command{
	Use:   "padded",
	Short: "Writes a single fixture file padded with random words up to a size threshold.",
	Long: `Writes a single fixture file padded with random words up to a size threshold.

The fixture starts with the configured entries. Afterward, entries with a random dictionary word as key and another
one as value are appended until the size of all entries reaches the threshold.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("threshold") {
			config.Padded.Threshold = paddedThreshold
		}
		if cmd.Flags().Changed("dictionary") {
			config.Padded.Dictionary = paddedDictionary
		}
		if cmd.Flags().Changed("seed") {
			config.Padded.Seed = &paddedSeed
		}

		words := dictionary.DefaultWords
		if config.Padded.Dictionary != "" {
			var err error
			if words, err = dictionary.LoadDictionary(config.Padded.Dictionary); err != nil {
				return err
			}
		}
		seed := dictionary.RandomSeed()
		if config.Padded.Seed != nil {
			seed = *config.Padded.Seed
		}
		wordList, err := dictionary.NewWordList(words, seed)
		if err != nil {
			return err
		}
		logging.Info("Loaded dictionary", zap.Int("words", wordList.Len()), zap.Uint64("seed", seed))

		result, err := generator.RunPadded(cmd.Context(), config.Directory, generator.PaddedConfig{
			Entries:         config.Padded.Entries,
			Threshold:       config.Padded.Threshold,
			Dictionary:      wordList,
			CreateDirectory: true,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\t%d entries\n", result.FilePath, result.Size, result.Entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paddedCmd)

	paddedCmd.Flags().Uint64VarP(
		&paddedThreshold,
		"threshold",
		"t",
		generator.DefaultPaddedThreshold,
		"The size in bytes the fixture is padded up to.",
	)

	paddedCmd.Flags().StringVar(
		&paddedDictionary,
		"dictionary",
		"",
		"The word list to pick padding words from. Supports JSON objects, JSON arrays and one word per line.",
	)

	paddedCmd.Flags().Uint64Var(
		&paddedSeed,
		"seed",
		0,
		"The seed for picking padding words. A random seed is used when not given.",
	)
}
