package utils

// FileLoop provides a stub for a fixture file which returns the same data over and over again in an endless loop.
// It allows us to run benchmarks of the fixture reader without providing an actual big file on disk or memory.
type FileLoop struct {
	Data   []byte
	Offset int
}

func (f *FileLoop) Read(p []byte) (int, error) {
	copyBytes := min(len(p), len(f.Data)-f.Offset)
	copy(p, f.Data[f.Offset:f.Offset+copyBytes])
	f.Offset += copyBytes
	if f.Offset >= len(f.Data) {
		f.Offset = 0
	}
	return copyBytes, nil
}

func (f *FileLoop) Close() error {
	return nil
}

func (f *FileLoop) Name() string {
	return "in-memory-loop"
}
