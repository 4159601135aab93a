package generator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/clock"
	"github.com/backbone81/wal-fixtures/internal/dictionary"
	"github.com/backbone81/wal-fixtures/internal/fixture"
)

// PaddedConfig is the configuration required for a call to RunPadded.
type PaddedConfig struct {
	// Entries are written first, in order.
	Entries []KeyValue

	// Threshold is the cumulative encoded size in bytes the fixture is padded up to. The fixture ends with the first
	// entry which makes the size reach or exceed the threshold.
	Threshold uint64

	// Dictionary provides the words for the padding entries. Defaults to the built-in word list with a random seed.
	Dictionary dictionary.Dictionary

	// Clock stamps the file name and the entries. Defaults to the system clock.
	Clock clock.Clock

	// CreateDirectory creates the target directory if it does not exist.
	CreateDirectory bool
}

// RunPadded writes a single fixture file to the directory. It starts with the configured entries and keeps appending
// entries whose key and value are two independently chosen dictionary words until the fixture reaches the threshold.
//
// Every padding entry adds at least 26 bytes, so the run always terminates.
func RunPadded(ctx context.Context, directory string, config PaddedConfig) (Result, error) {
	if config.Dictionary == nil {
		wordList, err := dictionary.NewWordList(dictionary.DefaultWords, dictionary.RandomSeed())
		if err != nil {
			return Result{}, err
		}
		config.Dictionary = wordList
	}
	for _, keyValue := range config.Entries {
		if err := keyValue.Validate(); err != nil {
			return Result{}, err
		}
	}
	logger := newRunLogger("padded")

	writer, err := fixture.CreateFixture(directory, fixture.CreateFixtureConfig{
		Clock:           config.Clock,
		CreateDirectory: config.CreateDirectory,
	})
	if err != nil {
		return Result{}, err
	}
	logger.Info("Starting fixture run", zap.String("file", writer.FilePath()), zap.Uint64("threshold", config.Threshold))

	for _, keyValue := range config.Entries {
		if _, err := writer.AppendEntry(keyValue.Key, keyValue.Value); err != nil {
			return Result{}, closeWriter(writer, fmt.Errorf("writing entry %q: %w", keyValue.Key, err))
		}
	}

	for writer.Size() < config.Threshold {
		if err := ctx.Err(); err != nil {
			return Result{}, closeWriter(writer, err)
		}
		key := config.Dictionary.RandomWord()
		value := config.Dictionary.RandomWord()
		if _, err := writer.AppendEntry(key, value); err != nil {
			return Result{}, closeWriter(writer, fmt.Errorf("writing padding entry %q: %w", key, err))
		}
		logger.Debug("Wrote padding entry", zap.String("key", key), zap.String("value", value), zap.Uint64("size", writer.Size()))
	}

	if err := writer.Close(); err != nil {
		return Result{}, err
	}
	result := resultOf(writer)
	logger.Info("Finished fixture run",
		zap.String("file", result.FilePath),
		zap.Int("entries", result.Entries),
		zap.Uint64("bytes", result.Size),
	)
	return result, nil
}
