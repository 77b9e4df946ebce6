package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger metrics, registered once at package init.
var (
	EntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpledger_entries_created_total",
			Help: "Total number of ledger entries created",
		},
		[]string{"kind"},
	)

	EntriesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpledger_entries_deleted_total",
			Help: "Total number of ledger entries deleted",
		},
		[]string{"kind"},
	)

	ClosesPerformed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corpledger_closes_performed_total",
		Help: "Total number of monthly closes performed",
	})

	CloseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "corpledger_close_duration_seconds",
		Help:    "Duration of monthly close runs",
		Buckets: prometheus.DefBuckets,
	})

	ReportsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corpledger_reports_built_total",
		Help: "Total number of reports built",
	})
)
