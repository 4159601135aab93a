package encoding

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrEncoding is returned when the key or the value of an entry cannot be represented as UTF-8 text.
	ErrEncoding = errors.New("WAL entry text is not valid UTF-8")

	ErrEntryKeyEmpty       = errors.New("the WAL entry key is empty")
	ErrEntryValueEmpty     = errors.New("the WAL entry value is empty")
	ErrEntryLengthExceeded = errors.New("the WAL entry exceeds the maximum possible size")
)

// EntryOverhead is the number of bytes every entry needs in addition to the key and the value.
const EntryOverhead = LengthSize + LengthSize + TimestampSize

// Entry is a single key/value pair stamped with the time it was serialized.
type Entry struct {
	// Key is the UTF-8 text of the key. It must not be empty.
	Key string

	// Value is the UTF-8 text of the value. It must not be empty.
	Value string

	// Timestamp is the time of serialization in microseconds since the Unix epoch.
	Timestamp uint64
}

// Size returns the number of bytes the entry occupies when encoded.
func (e Entry) Size() uint64 {
	return EntrySize(e.Key, e.Value)
}

// Validate makes sure the entry can be encoded.
func (e Entry) Validate() error {
	if len(e.Key) == 0 {
		return ErrEntryKeyEmpty
	}
	if len(e.Value) == 0 {
		return ErrEntryValueEmpty
	}
	if !utf8.ValidString(e.Key) {
		return fmt.Errorf("%w: key %q", ErrEncoding, e.Key)
	}
	if !utf8.ValidString(e.Value) {
		return fmt.Errorf("%w: value %q", ErrEncoding, e.Value)
	}
	return nil
}

// EntrySize returns the number of bytes an entry with the given key and value occupies when encoded.
func EntrySize(key string, value string) uint64 {
	return EntryOverhead + uint64(len(key)) + uint64(len(value))
}

// AppendEntry appends the binary encoding of the entry to dst and returns the extended slice. On error, dst is
// returned unchanged.
func AppendEntry(dst []byte, entry Entry) ([]byte, error) {
	if err := entry.Validate(); err != nil {
		return dst, err
	}
	dst = AppendLength(dst, uint64(len(entry.Key)))
	dst = append(dst, entry.Key...)
	dst = AppendLength(dst, uint64(len(entry.Value)))
	dst = append(dst, entry.Value...)
	dst = AppendTimestamp(dst, entry.Timestamp)
	return dst, nil
}

// WriteEntry encodes the entry and outputs it to the writer with a single write call. It returns the number of bytes
// written.
func WriteEntry(writer io.Writer, entry Entry) (int, error) {
	data, err := AppendEntry(make([]byte, 0, entry.Size()), entry)
	if err != nil {
		return 0, err
	}
	n, err := writer.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing WAL entry: %w", err)
	}
	return n, nil
}

// ReadEntry reads a single entry from the reader and returns it together with the number of bytes it occupied.
//
// Give maxLength to detect malformed entries early and prevent excessive memory allocations in such situations. Set
// maxLength to the remaining bytes in the current file.
//
// io.EOF is only reported (wrapped) when the reader had no data left at the start of the entry. An entry which ends
// prematurely results in io.ErrUnexpectedEOF.
func ReadEntry(reader io.Reader, maxLength uint64) (Entry, uint64, error) {
	var buffer [max(LengthSize, TimestampSize)]byte

	keyLength, err := ReadLength(reader, buffer[:])
	if err != nil {
		return Entry{}, 0, err
	}
	if maxLength < EntryOverhead || maxLength-EntryOverhead < keyLength {
		return Entry{}, 0, ErrEntryLengthExceeded
	}
	key := make([]byte, keyLength)
	if _, err := io.ReadFull(reader, key); err != nil {
		return Entry{}, 0, fmt.Errorf("reading WAL entry key: %w", noEOF(err))
	}

	valueLength, err := ReadLength(reader, buffer[:])
	if err != nil {
		return Entry{}, 0, fmt.Errorf("reading WAL entry value: %w", noEOF(err))
	}
	if maxLength-EntryOverhead-keyLength < valueLength {
		return Entry{}, 0, ErrEntryLengthExceeded
	}
	value := make([]byte, valueLength)
	if _, err := io.ReadFull(reader, value); err != nil {
		return Entry{}, 0, fmt.Errorf("reading WAL entry value: %w", noEOF(err))
	}

	timestamp, err := ReadTimestamp(reader, buffer[:])
	if err != nil {
		return Entry{}, 0, fmt.Errorf("reading WAL entry: %w", noEOF(err))
	}

	entry := Entry{
		Key:       string(key),
		Value:     string(value),
		Timestamp: timestamp,
	}
	if err := entry.Validate(); err != nil {
		return Entry{}, 0, err
	}
	return entry, EntryOverhead + keyLength + valueLength, nil
}

// noEOF converts io.EOF into io.ErrUnexpectedEOF. Once the first field of an entry was read, running out of data
// means the entry is truncated.
func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
