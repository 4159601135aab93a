// Package walfixture generates and reads fixture files in a simple write-ahead log format.
//
//   - A fixture file is a concatenation of entries without any header, footer or checksum.
//   - Each entry is made up of the key length, the key, the value length, the value and a timestamp. Lengths and the
//     timestamp are unsigned 64-bit little-endian integers, key and value are UTF-8 text. The timestamp is given in
//     microseconds since the Unix epoch and taken when the entry is serialized.
//   - Fixture files are named after the microsecond timestamp of their creation with a `.wal` file extension.
//   - Two run drivers produce fixtures: RunFixed writes one file per entry, RunPadded fills a single file with random
//     dictionary words until it reaches a size threshold.
package walfixture
