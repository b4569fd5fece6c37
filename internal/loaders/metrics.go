package loaders

import (
	"cookie-analytics/internal/shared/metrics"
)

var (
	// metricRowsProcessedTotal counts input rows by parse outcome (accepted, no_marker, duplicate_payload, ...).
	metricRowsProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoader,
			Name:      "rows_processed_total",
		},
		[]string{"outcome"},
	)

	metricDiagnosticsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoader,
			Name:      "diagnostics_total",
		},
		[]string{"code"},
	)
)
