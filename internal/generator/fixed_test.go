package generator_test

import (
	"context"
	"path"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/wal-fixtures/internal/clock"
	"github.com/backbone81/wal-fixtures/internal/encoding"
	"github.com/backbone81/wal-fixtures/internal/fixture"
	"github.com/backbone81/wal-fixtures/internal/generator"
)

var _ = Describe("RunFixed", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should write one fixture file per entry", func() {
		results, err := generator.RunFixed(context.Background(), dir, generator.FixedConfig{
			Entries: generator.DefaultFixedEntries,
			Clock:   &clock.ManualClock{Now: 1700000000000000, Step: 1},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(Equal([]generator.Result{
			{FilePath: path.Join(dir, "1700000000000000.wal"), Entries: 1, Size: 43},
			{FilePath: path.Join(dir, "1700000000000002.wal"), Entries: 1, Size: 56},
			{FilePath: path.Join(dir, "1700000000000004.wal"), Entries: 1, Size: 29},
		}))
		Expect(fixture.GetFixtures(dir)).To(HaveLen(3))

		Expect(fixture.ReadFixture(results[1].FilePath)).To(Equal([]encoding.Entry{
			{Key: "address", Value: "St Albans, United Kingdom", Timestamp: 1700000000000003},
		}))
	})

	It("should write nothing for an empty list", func() {
		results, err := generator.RunFixed(context.Background(), dir, generator.FixedConfig{})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(BeEmpty())
		Expect(fixture.GetFixtures(dir)).To(BeEmpty())
	})

	It("should create distinct files with the system clock and a short delay", func() {
		results, err := generator.RunFixed(context.Background(), dir, generator.FixedConfig{
			Entries: generator.DefaultFixedEntries,
			Delay:   time.Millisecond,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(fixture.GetFixtures(dir)).To(HaveLen(3))
	})

	It("should create the directory when requested", func() {
		dataDir := path.Join(dir, "data")
		Expect(generator.RunFixed(context.Background(), dataDir, generator.FixedConfig{
			Entries:         generator.DefaultFixedEntries[:1],
			CreateDirectory: true,
		})).To(HaveLen(1))
	})

	It("should stop during the pause when the context is done", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		results, err := generator.RunFixed(ctx, dir, generator.FixedConfig{
			Entries: generator.DefaultFixedEntries,
			Delay:   time.Hour,
		})
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(results).To(HaveLen(1))
	})

	It("should abort on the first entry which cannot be encoded", func() {
		results, err := generator.RunFixed(context.Background(), dir, generator.FixedConfig{
			Entries: []generator.KeyValue{
				{Key: "name", Value: "James Errington"},
				{Key: "broken", Value: "\xff"},
				{Key: "age", Value: "26"},
			},
		})
		Expect(err).To(MatchError(encoding.ErrEncoding))
		Expect(results).To(HaveLen(1))
	})

	It("should fail when the directory does not exist", func() {
		results, err := generator.RunFixed(context.Background(), path.Join(dir, "missing"), generator.FixedConfig{
			Entries: generator.DefaultFixedEntries,
		})
		Expect(err).To(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("should not leave a fixture behind for an entry which cannot be encoded", func() {
		results, err := generator.RunFixed(context.Background(), dir, generator.FixedConfig{
			Entries: []generator.KeyValue{
				{Key: "broken", Value: "\xff"},
			},
			Clock: &clock.ManualClock{Now: 5},
		})
		Expect(err).To(MatchError(encoding.ErrEncoding))
		Expect(results).To(BeEmpty())
		Expect(fixture.GetFixtures(dir)).To(BeEmpty())
	})
})
