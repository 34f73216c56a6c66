package store

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	storePrometheusMetrics sync.Once

	storeCompactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recall",
			Subsystem: "store",
			Name:      "compactions_total",
			Help:      "Number of times Compact() rewrote the slot buffer",
		},
		[]string{"name"},
	)
	storeCapacityExceeded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recall",
			Subsystem: "store",
			Name:      "capacity_exceeded_total",
			Help:      "Number of Put() calls refused because no slot could be appended, which may indicate the store needs compacting or is undersized",
		},
		[]string{"name"},
	)
)

func registerStoreMetrics() {
	storePrometheusMetrics.Do(func() {
		prometheus.MustRegister(storeCompactions)
		prometheus.MustRegister(storeCapacityExceeded)
	})
}
