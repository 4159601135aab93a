package walfixture

import (
	"github.com/prometheus/client_golang/prometheus"

	intfixture "github.com/backbone81/wal-fixtures/internal/fixture"
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	return intfixture.RegisterMetrics(registerer)
}
