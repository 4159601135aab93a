package fixture

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// DefaultDirectory is the directory fixture files are written to when nothing else is configured.
const DefaultDirectory = "data"

// FileExtension is the file extension of every fixture file.
const FileExtension = ".wal"

// fileNamePattern is the file pattern all fixture files need to follow.
var fileNamePattern = regexp.MustCompile(`^\d{1,20}\.wal$`)

// FileName returns the file name of the fixture created at the given timestamp.
func FileName(timestamp uint64) string {
	return strconv.FormatUint(timestamp, 10) + FileExtension
}

// FilePath returns the path of the fixture created at the given timestamp within the directory.
func FilePath(directory string, timestamp uint64) string {
	return path.Join(directory, FileName(timestamp))
}

// GetFixtures returns a list of timestamps representing the fixture files in the directory. The timestamps are
// sorted in ascending order.
func GetFixtures(directory string) ([]uint64, error) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", directory, err)
	}

	result := make([]uint64, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if !fileNamePattern.MatchString(dirEntry.Name()) {
			continue
		}
		timestamp, err := strconv.ParseUint(strings.TrimSuffix(dirEntry.Name(), FileExtension), 10, 64)
		if err != nil {
			// Twenty digits can still overflow uint64. Such a file was not written by us.
			continue
		}
		result = append(result, timestamp)
	}

	// os.ReadDir sorts by file name, which is not the numeric order for names of different length.
	slices.Sort(result)
	return result, nil
}
