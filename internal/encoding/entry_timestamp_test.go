package encoding_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/wal-fixtures/internal/encoding"
)

var _ = Describe("EntryTimestamp", func() {
	It("should encode the timestamp little-endian", func() {
		output := encoding.AppendTimestamp(nil, 1700000000000000)
		Expect(output).To(Equal([]byte{0x00, 0x40, 0x1e, 0x18, 0x24, 0x0a, 0x06, 0x00}))
	})

	It("should read the timestamp", func() {
		output := encoding.AppendTimestamp(nil, 1700000000000000)

		var buffer [encoding.TimestampSize]byte
		timestamp, err := encoding.ReadTimestamp(bytes.NewReader(output), buffer[:])
		Expect(err).ToNot(HaveOccurred())
		Expect(timestamp).To(Equal(uint64(1700000000000000)))
	})

	It("should fail reading a truncated timestamp", func() {
		var buffer [encoding.TimestampSize]byte
		Expect(encoding.ReadTimestamp(bytes.NewReader([]byte{1}), buffer[:])).Error().To(MatchError(io.ErrUnexpectedEOF))
	})
})
