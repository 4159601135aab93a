package encoding

import (
	"fmt"
	"io"
)

// LengthSize is the number of bytes the length of a key or a value occupies in an entry.
const LengthSize = 8

// AppendLength appends the length encoded as little-endian uint64 to dst and returns the extended slice.
func AppendLength(dst []byte, length uint64) []byte {
	return Endian.AppendUint64(dst, length)
}

// ReadLength reads a length encoded as little-endian uint64 from the reader.
// The buffer is required to avoid allocations and should be big enough to hold the encoded length temporarily.
func ReadLength(reader io.Reader, buffer []byte) (uint64, error) {
	if _, err := io.ReadFull(reader, buffer[:LengthSize]); err != nil {
		return 0, fmt.Errorf("reading WAL entry length: %w", err)
	}
	return Endian.Uint64(buffer[:LengthSize]), nil
}
