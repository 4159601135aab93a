// Package generator drives the creation of WAL fixture files.
//
// Two run drivers exist side by side:
//
//   - RunFixed writes one fixture file per entry of a fixed list, pausing between the files.
//   - RunPadded writes a fixed list of entries into a single fixture file and pads it with entries made of random
//     dictionary words until the file reaches a size threshold.
//
// Failures are not recovered from. Every error is returned to the caller, which is expected to abort the run.
package generator

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/backbone81/wal-fixtures/internal/encoding"
	"github.com/backbone81/wal-fixtures/internal/fixture"
	"github.com/backbone81/wal-fixtures/internal/logging"
)

// KeyValue is a single key/value pair to turn into an entry.
type KeyValue struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Validate makes sure the pair can be encoded as an entry.
func (kv KeyValue) Validate() error {
	if err := (encoding.Entry{Key: kv.Key, Value: kv.Value}).Validate(); err != nil {
		return fmt.Errorf("writing entry %q: %w", kv.Key, err)
	}
	return nil
}

// Result describes a fixture file written by a run driver.
type Result struct {
	// FilePath is the path of the fixture file.
	FilePath string

	// Entries is the number of entries in the fixture file.
	Entries int

	// Size is the cumulative encoded size of all entries in bytes, which is identical to the file size.
	Size uint64
}

// newRunLogger returns a logger which tags every line with a unique id of the run.
func newRunLogger(variant string) *zap.Logger {
	return logging.Logger().With(
		zap.String("variant", variant),
		zap.String("run_id", uuid.NewString()),
	)
}

// closeWriter closes the writer and joins a close failure with the error which ended the run. A fixture without any
// entry is removed, as it would look like a valid empty fixture.
func closeWriter(writer *fixture.Writer, err error) error {
	err = errors.Join(err, writer.Close())
	if writer.EntryCount() == 0 {
		if removeErr := os.Remove(writer.FilePath()); removeErr != nil {
			err = errors.Join(err, fmt.Errorf("removing empty fixture file: %w", removeErr))
		}
	}
	return err
}

// resultOf describes the fixture the writer has written.
func resultOf(writer *fixture.Writer) Result {
	return Result{
		FilePath: writer.FilePath(),
		Entries:  writer.EntryCount(),
		Size:     writer.Size(),
	}
}
