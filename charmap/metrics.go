package charmap

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	charmapPrometheusMetrics sync.Once

	mapInsertProbes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recall",
			Subsystem: "charmap",
			Name:      "insert_probes",
			Help:      "Number of buckets probed by Insert()",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 8),
		},
		[]string{"name"},
	)
	mapSearchProbes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recall",
			Subsystem: "charmap",
			Name:      "search_probes",
			Help:      "Number of buckets probed by Search()",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 8),
		},
		[]string{"name", "outcome"},
	)
	mapRehashes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recall",
			Subsystem: "charmap",
			Name:      "rehashes_total",
			Help:      "Number of times the bucket table doubled",
		},
		[]string{"name"},
	)
)

func registerCharmapMetrics() {
	charmapPrometheusMetrics.Do(func() {
		prometheus.MustRegister(mapInsertProbes)
		prometheus.MustRegister(mapSearchProbes)
		prometheus.MustRegister(mapRehashes)
	})
}
