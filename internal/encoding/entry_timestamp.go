package encoding

import (
	"fmt"
	"io"
)

// TimestampSize is the number of bytes the timestamp occupies at the end of an entry.
const TimestampSize = 8

// AppendTimestamp appends the timestamp in microseconds encoded as little-endian uint64 to dst and returns the
// extended slice.
func AppendTimestamp(dst []byte, timestamp uint64) []byte {
	return Endian.AppendUint64(dst, timestamp)
}

// ReadTimestamp reads a timestamp in microseconds encoded as little-endian uint64 from the reader.
// The buffer is required to avoid allocations and should be big enough to hold the encoded timestamp temporarily.
func ReadTimestamp(reader io.Reader, buffer []byte) (uint64, error) {
	if _, err := io.ReadFull(reader, buffer[:TimestampSize]); err != nil {
		return 0, fmt.Errorf("reading WAL entry timestamp: %w", err)
	}
	return Endian.Uint64(buffer[:TimestampSize]), nil
}
