// Package encoding implements the binary layout of a single WAL fixture entry.
//
// Every entry is made up of five fields which follow each other without padding:
//
//   - the length of the key in bytes as unsigned 64-bit integer,
//   - the key as UTF-8 text,
//   - the length of the value in bytes as unsigned 64-bit integer,
//   - the value as UTF-8 text,
//   - the timestamp of the entry in microseconds since the Unix epoch as unsigned 64-bit integer.
//
// All integers are encoded little-endian. A fixture file is a plain concatenation of entries without any header,
// footer or checksum.
package encoding

import "encoding/binary"

// Endian is the endianness the fixtures use for serializing/deserializing integers to file.
var Endian = binary.LittleEndian
