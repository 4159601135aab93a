package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backbone81/wal-fixtures/internal/encoding"
	"github.com/backbone81/wal-fixtures/internal/utils"
)

var (
	ErrEntryNone      = errors.New("this is no WAL entry")
	ErrTimestampOrder = errors.New("the WAL entry timestamp is smaller than the one of the previous entry")
)

// ReaderFile is an interface which needs to be implemented by the file to read from.
type ReaderFile interface {
	io.ReadCloser
	Name() string
}

// Reader provides functionality for reading the entries of a single fixture file one after the other.
//
// Instances of Reader are NOT safe to use concurrently. You need to provide external synchronization.
type Reader struct {
	noCopy utils.NoCopy

	// The fixture file to read from.
	file ReaderFile

	// Buffers the reads of the small fields of every entry.
	reader *bufio.Reader

	// The current offset from the start of the file in bytes. This is used together with fileSize to calculate the
	// available data until the end of the file.
	offset uint64

	// The total size of the file in bytes. This helps with avoiding large memory allocations with malformed files.
	fileSize uint64

	// The value the reader returns. Only contains useful data if err is nil.
	value encoding.Entry

	// The error for the last operation.
	err error

	// Reports if the end of the file was reached cleanly.
	done bool
}

// OpenFixture creates a new reader for the fixture file at the given path.
//
// To avoid resources leaking, the returned Reader needs to be closed by calling Close().
func OpenFixture(filePath string) (*Reader, error) {
	file, err := os.Open(filePath) //nolint:gosec // We can not validate paths in a library.
	if err != nil {
		return nil, fmt.Errorf("opening the fixture file %q: %w", filePath, err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}
		return nil, fmt.Errorf("reading size of fixture file %q: %w", filePath, err)
	}
	return NewReader(file, uint64(fileInfo.Size())), nil //nolint:gosec // file sizes are never negative
}

// NewReader creates a Reader from a file which is already open. fileSize is the number of bytes available in the file.
func NewReader(file ReaderFile, fileSize uint64) *Reader {
	return &Reader{
		file:     file,
		reader:   bufio.NewReader(file),
		fileSize: fileSize,
	}
}

// FilePath returns the file path of the file this reader is reading from.
func (r *Reader) FilePath() string {
	return r.file.Name()
}

// Offset returns the offset in bytes from the start of the file up to the end of the last entry read.
func (r *Reader) Offset() uint64 {
	return r.offset
}

// Next reports if an entry has been successfully read. When it returns true, Err() returns nil and Value() contains
// valid data. When it returns false, Err() is nil if the reader has reached the end of the file, or it contains the
// reason why no further entry could be read.
func (r *Reader) Next() bool {
	if r.done || r.err != nil {
		return false
	}
	if r.offset == r.fileSize {
		r.done = true
		return false
	}

	entry, size, err := encoding.ReadEntry(r.reader, r.fileSize-r.offset)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// The file is shorter than reported. Bytes are missing, not trailing.
			err = io.ErrUnexpectedEOF
		}
		r.err = errors.Join(ErrEntryNone, fmt.Errorf("at offset %d: %w", r.offset, err))
		return false
	}
	if entry.Timestamp < r.value.Timestamp {
		r.err = fmt.Errorf("at offset %d: %w", r.offset, ErrTimestampOrder)
		return false
	}
	r.value = entry
	r.offset += size

	ReadEntryTotal.Inc()
	return true
}

// Value returns the last entry read from the fixture file. The value is only valid after a call to Next() which
// returned true.
func (r *Reader) Value() encoding.Entry {
	return r.value
}

// Err returns the error for the last call to Next(). It returns nil when the end of the file was reached after the
// last complete entry. ErrEntryNone is returned when the remaining bytes do not form a complete entry.
// ErrTimestampOrder is returned when an entry is older than the entry before it.
func (r *Reader) Err() error {
	return r.err
}

// Close closes the file the Reader is reading from.
func (r *Reader) Close() error {
	if err := r.file.Close(); err != nil {
		return err
	}
	return nil
}

// ReadFixture reads all entries of the fixture file at the given path.
func ReadFixture(filePath string) ([]encoding.Entry, error) {
	reader, err := OpenFixture(filePath)
	if err != nil {
		return nil, err
	}

	var entries []encoding.Entry
	for reader.Next() {
		entries = append(entries, reader.Value())
	}
	return entries, errors.Join(reader.Err(), reader.Close())
}
