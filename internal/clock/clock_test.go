package clock_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/wal-fixtures/internal/clock"
)

var _ = Describe("Clock", func() {
	It("should report the wall clock in microseconds", func() {
		before := uint64(time.Now().UnixMicro())
		now := clock.NewSystemClock().NowMicro()
		after := uint64(time.Now().UnixMicro())
		Expect(now).To(BeNumerically(">=", before))
		Expect(now).To(BeNumerically("<=", after))
	})

	It("should never go backwards", func() {
		systemClock := clock.NewSystemClock()
		previous := systemClock.NowMicro()
		for range 10000 {
			now := systemClock.NowMicro()
			Expect(now).To(BeNumerically(">=", previous))
			previous = now
		}
	})

	It("should advance the manual clock by its step", func() {
		manualClock := clock.ManualClock{Now: 100, Step: 5}
		Expect(manualClock.NowMicro()).To(Equal(uint64(100)))
		Expect(manualClock.NowMicro()).To(Equal(uint64(105)))

		manualClock.Set(1)
		Expect(manualClock.NowMicro()).To(Equal(uint64(1)))
	})

	It("should keep the manual clock still without a step", func() {
		manualClock := clock.ManualClock{Now: 100}
		Expect(manualClock.NowMicro()).To(Equal(manualClock.NowMicro()))
	})
})
