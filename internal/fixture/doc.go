// Package fixture reads and writes WAL fixture files.
//
// The on-disk structure looks like this:
//
//   - All fixture files of a run are located in the same directory, which is "data" by default.
//   - Every fixture file has the timestamp of its creation in microseconds since the Unix epoch as its file name,
//     written as a decimal number without padding and with a `.wal` file extension.
//   - A fixture file is a concatenation of zero or more entries as described by the encoding package. There is no
//     file header, footer or checksum.
//   - Timestamps of entries within one fixture file are monotonically non-decreasing.
package fixture
