package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/clock"
	"github.com/backbone81/wal-fixtures/internal/fixture"
)

// FixedConfig is the configuration required for a call to RunFixed.
type FixedConfig struct {
	// Entries are written one per fixture file, in order.
	Entries []KeyValue

	// Delay is the pause between two fixture files. Zero disables the pause.
	Delay time.Duration

	// Clock stamps file names and entries. Defaults to the system clock.
	Clock clock.Clock

	// CreateDirectory creates the target directory if it does not exist.
	CreateDirectory bool
}

// RunFixed writes every configured entry into its own fixture file in the directory. The results of all files
// written so far are returned, even when the run is aborted by an error or by the context.
func RunFixed(ctx context.Context, directory string, config FixedConfig) ([]Result, error) {
	if config.Clock == nil {
		config.Clock = clock.NewSystemClock()
	}
	logger := newRunLogger("fixed")
	logger.Info("Starting fixture run", zap.String("directory", directory), zap.Int("files", len(config.Entries)))

	results := make([]Result, 0, len(config.Entries))
	for i, keyValue := range config.Entries {
		if i > 0 {
			if err := sleep(ctx, config.Delay); err != nil {
				return results, err
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := writeSingle(directory, config, keyValue)
		if err != nil {
			return results, err
		}
		logger.Info("Wrote fixture",
			zap.String("file", result.FilePath),
			zap.String("key", keyValue.Key),
			zap.Uint64("bytes", result.Size),
		)
		results = append(results, result)
	}

	logger.Info("Finished fixture run", zap.Int("files", len(results)))
	return results, nil
}

func writeSingle(directory string, config FixedConfig, keyValue KeyValue) (Result, error) {
	if err := keyValue.Validate(); err != nil {
		return Result{}, err
	}
	writer, err := fixture.CreateFixture(directory, fixture.CreateFixtureConfig{
		Clock:           config.Clock,
		CreateDirectory: config.CreateDirectory,
	})
	if err != nil {
		return Result{}, err
	}
	if _, err := writer.AppendEntry(keyValue.Key, keyValue.Value); err != nil {
		return Result{}, closeWriter(writer, fmt.Errorf("writing entry %q: %w", keyValue.Key, err))
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}
	return resultOf(writer), nil
}

// sleep pauses for the given duration or until the context is done.
func sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
