package fixture

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CreateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wal_fixture_create_total",
			Help: "Total number of fixture files created.",
		},
	)

	CreateCollisionTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wal_fixture_create_collision_total",
			Help: "Total number of fixture file names which were already taken when creating a fixture.",
		},
	)

	WriteEntryTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wal_fixture_write_entry_total",
			Help: "Total number of entries written to fixture files.",
		},
	)

	WriteEntryBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wal_fixture_write_entry_bytes_total",
			Help: "Total number of encoded entry bytes written to fixture files.",
		},
	)

	ReadEntryTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wal_fixture_read_entry_total",
			Help: "Total number of entries read from fixture files.",
		},
	)

	EntrySize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wal_fixture_entry_size_bytes",
			Help:    "Size of encoded entries written to fixture files.",
			Buckets: prometheus.ExponentialBuckets(32, 2, 12),
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		CreateTotal,
		CreateCollisionTotal,
		WriteEntryTotal,
		WriteEntryBytes,
		ReadEntryTotal,
		EntrySize,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
