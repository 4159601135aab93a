package fixture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/backbone81/wal-fixtures/internal/clock"
	"github.com/backbone81/wal-fixtures/internal/encoding"
	"github.com/backbone81/wal-fixtures/internal/utils"
)

// MaxCreateAttempts is the number of file names tried when creating a fixture before giving up. Every attempt moves
// the timestamp of the file name one microsecond forward.
const MaxCreateAttempts = 1000

var ErrCreateAttemptsExhausted = errors.New("no free fixture file name found")

// WriterFile is an interface which needs to be implemented by the file to write to.
type WriterFile interface {
	io.WriteCloser
	Name() string
}

// Writer provides functionality for appending entries to a single fixture file.
//
// Instances of Writer are NOT safe to use concurrently. You need to provide external synchronization.
type Writer struct {
	noCopy utils.NoCopy

	// The file the writer is writing data to.
	file WriterFile

	// The timestamp the fixture file is named after.
	timestamp uint64

	// The clock entries are stamped with when they are serialized.
	clock clock.Clock

	// The timestamp of the last entry written. Later entries never receive a smaller timestamp.
	lastTimestamp uint64

	// This buffer holds the encoded entry so that every entry is written with a single write call. It is re-used
	// between entries to reduce the amount of memory allocations.
	writeBuffer []byte

	// The number of bytes written to the file so far.
	size uint64

	// The number of entries written to the file so far.
	entryCount int
}

// CreateFixtureConfig is the configuration required for a call to CreateFixture.
type CreateFixtureConfig struct {
	// Clock provides the timestamp for the file name and for every entry. Defaults to the system clock.
	Clock clock.Clock

	// CreateDirectory creates the directory including all parents if it does not exist.
	CreateDirectory bool
}

// CreateFixture creates a new fixture file in the given directory. The file is named after the current timestamp of
// the clock. An existing file is never overwritten: when the name is already taken, the timestamp is moved forward by
// one microsecond and the creation is retried.
//
// To avoid resources leaking, the returned Writer needs to be closed by calling Close().
func CreateFixture(directory string, config CreateFixtureConfig) (*Writer, error) {
	if config.Clock == nil {
		config.Clock = clock.NewSystemClock()
	}
	if config.CreateDirectory {
		if err := os.MkdirAll(directory, 0o775); err != nil { //nolint:gosec // The directory is shared with the consuming system.
			return nil, fmt.Errorf("creating the fixture directory %q: %w", directory, err)
		}
	}

	timestamp := config.Clock.NowMicro()
	for range MaxCreateAttempts {
		filePath := FilePath(directory, timestamp)
		file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o664) //nolint:gosec // We can not validate paths in a library.
		if errors.Is(err, fs.ErrExist) {
			CreateCollisionTotal.Inc()
			timestamp++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("creating the fixture file %q: %w", filePath, err)
		}

		CreateTotal.Inc()
		return NewWriter(file, NewWriterConfig{
			Timestamp: timestamp,
			Clock:     config.Clock,
		}), nil
	}
	return nil, fmt.Errorf("creating a fixture file in %q: %w", directory, ErrCreateAttemptsExhausted)
}

// NewWriterConfig is the configuration required for a call to NewWriter.
type NewWriterConfig struct {
	// Timestamp is the timestamp the fixture file is named after.
	Timestamp uint64

	// Clock provides the timestamp for every entry. Defaults to the system clock.
	Clock clock.Clock
}

// NewWriter creates a Writer from a file which is already open.
func NewWriter(file WriterFile, config NewWriterConfig) *Writer {
	if config.Clock == nil {
		config.Clock = clock.NewSystemClock()
	}
	return &Writer{
		file:        file,
		timestamp:   config.Timestamp,
		clock:       config.Clock,
		writeBuffer: make([]byte, 0, 1024),
	}
}

// FilePath returns the file path of the file this writer is writing to.
func (w *Writer) FilePath() string {
	return w.file.Name()
}

// Timestamp returns the timestamp the fixture file is named after.
func (w *Writer) Timestamp() uint64 {
	return w.timestamp
}

// Size returns the number of bytes written to the fixture file.
func (w *Writer) Size() uint64 {
	return w.size
}

// EntryCount returns the number of entries written to the fixture file.
func (w *Writer) EntryCount() int {
	return w.entryCount
}

// AppendEntry stamps the key and value with the current time, encodes them and appends the entry to the fixture
// file. It returns the encoded size of the entry.
func (w *Writer) AppendEntry(key string, value string) (uint64, error) {
	// The timestamp is taken right before serialization. Clamping to the last timestamp keeps the entries of one file
	// ordered even with a clock which jumps backwards.
	w.lastTimestamp = max(w.lastTimestamp, w.clock.NowMicro())
	entry := encoding.Entry{
		Key:       key,
		Value:     value,
		Timestamp: w.lastTimestamp,
	}

	data, err := encoding.AppendEntry(w.writeBuffer[:0], entry)
	if err != nil {
		return 0, err
	}
	w.writeBuffer = data

	if _, err := w.file.Write(data); err != nil {
		return 0, fmt.Errorf("writing entry to fixture file %q: %w", w.file.Name(), err)
	}
	size := uint64(len(data))
	w.size += size
	w.entryCount++

	WriteEntryTotal.Inc()
	WriteEntryBytes.Add(float64(size))
	EntrySize.Observe(float64(size))
	return size, nil
}

// Close closes the fixture file.
func (w *Writer) Close() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing fixture file %q: %w", w.file.Name(), err)
	}
	return nil
}
