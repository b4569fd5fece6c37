package aggregators

import (
	"cookie-analytics/internal/shared/metrics"
)

var (
	metricRecordsAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_aggregated_total",
		},
	)

	// metricCookieNames is the number of distinct canonical cookie names after the last aggregation.
	metricCookieNames = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "cookie_names",
		},
	)
)
