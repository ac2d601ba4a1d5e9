package gather

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatherDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resgather_gather_duration_seconds",
			Help:    "Time taken to gather one complete report",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"report"}, // workloads, quotas-limits, nodes
	)

	reportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resgather_report_rows_total",
			Help: "Total data rows emitted per report kind",
		},
		[]string{"report"},
	)

	collectorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resgather_collector_calls_total",
			Help: "Collector invocations by call and outcome",
		},
		[]string{"call", "status"}, // status: success or error
	)
)
