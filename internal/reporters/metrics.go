package reporters

import (
	"cookie-analytics/internal/shared/metrics"
)

var (
	metricReportRowsWrittenTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "rows_written_total",
		},
	)
)
