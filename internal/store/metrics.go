package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of store mutations, by store and operation",
		},
		[]string{"store", "operation"},
	)

	storePersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_persistence_failures_total",
			Help: "Writes to durable storage that failed and were swallowed",
		},
		[]string{"store", "operation"},
	)

	storeHydrationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_hydration_failures_total",
			Help: "Hydrations that fell back to the empty default state",
		},
		[]string{"store", "reason"},
	)
)
