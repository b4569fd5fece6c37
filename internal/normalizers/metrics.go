package normalizers

import (
	"cookie-analytics/internal/shared/metrics"
)

// metricRuleMatchedTotal counts cookie occurrences rewritten by each rule.
// The label set is bounded by the rule table.
var (
	metricRuleMatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubNormalizer,
			Name:      "rule_matched_total",
		},
		[]string{"rule"},
	)
)
