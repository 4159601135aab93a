package utils

import (
	"bytes"
)

// FileRecorder provides a stub for a fixture file which records what is written to it in memory. The recorded data
// can be read back through the same value, which makes it usable for both the fixture writer and the fixture reader.
type FileRecorder struct {
	bytes.Buffer

	// Closed reports if Close has been called.
	Closed bool
}

func (f *FileRecorder) Close() error {
	f.Closed = true
	return nil
}

func (f *FileRecorder) Name() string {
	return "in-memory-recorder"
}
