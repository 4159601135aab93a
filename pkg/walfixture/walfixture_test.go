package walfixture_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/backbone81/wal-fixtures/pkg/walfixture"
)

var _ = Describe("WalFixture", func() {
	It("should write a padded fixture and read it back", func() {
		dir := GinkgoT().TempDir()
		dictionary, err := walfixture.NewWordList(walfixture.DefaultWords, 1)
		Expect(err).ToNot(HaveOccurred())

		result, err := walfixture.RunPadded(context.Background(), dir, walfixture.PaddedConfig{
			Entries:    []walfixture.KeyValue{{Key: "name", Value: "James Errington"}},
			Threshold:  1024,
			Dictionary: dictionary,
		})
		Expect(err).ToNot(HaveOccurred())

		entries, err := walfixture.ReadFixture(result.FilePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(result.Entries))

		var size uint64
		for _, entry := range entries {
			size += walfixture.EntrySize(entry.Key, entry.Value)
		}
		Expect(size).To(Equal(result.Size))
		Expect(walfixture.GetFixtures(dir)).To(HaveLen(1))
	})

	It("should register all metrics", func() {
		Expect(walfixture.RegisterMetrics(prometheus.NewRegistry())).To(Succeed())
	})
})
