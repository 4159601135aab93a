package utils

// FileDiscard provides a stub for a fixture file which discards all data. It allows us to run benchmarks of the
// fixture writer without filling up the disk or memory.
type FileDiscard struct{}

func (f *FileDiscard) Write(p []byte) (int, error) {
	return len(p), nil
}

func (f *FileDiscard) Close() error {
	return nil
}

func (f *FileDiscard) Name() string {
	return "in-memory-discard"
}
