package walfixture

import intencoding "github.com/backbone81/wal-fixtures/internal/encoding"

// Entry is a single key/value pair stamped with the time it was serialized.
type Entry = intencoding.Entry

var (
	// ErrEncoding is returned when the key or the value of an entry cannot be represented as UTF-8 text.
	ErrEncoding = intencoding.ErrEncoding

	ErrEntryKeyEmpty   = intencoding.ErrEntryKeyEmpty
	ErrEntryValueEmpty = intencoding.ErrEntryValueEmpty
)

// EntrySize returns the number of bytes an entry with the given key and value occupies when encoded.
var EntrySize = intencoding.EntrySize

// AppendEntry appends the binary encoding of the entry to dst and returns the extended slice.
var AppendEntry = intencoding.AppendEntry

// WriteEntry encodes the entry and outputs it to the writer with a single write call.
var WriteEntry = intencoding.WriteEntry

// ReadEntry reads a single entry from the reader and returns it together with the number of bytes it occupied.
var ReadEntry = intencoding.ReadEntry
