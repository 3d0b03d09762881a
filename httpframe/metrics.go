package httpframe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the parse loop, grounded directly on the
// teacher's buffer_pool_prometheus.go — the one place in the teacher
// repo that already reaches for prometheus/client_golang, here
// promoted from pool-only instrumentation to covering the parser's own
// rejection and latency surface.
var (
	rejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "httphead",
			Name:      "rejections_total",
			Help:      "Total number of message heads rejected, by reason",
		},
		[]string{"reason"},
	)

	parseDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "httphead",
			Name:      "parse_duration_seconds",
			Help:      "Wall time spent parsing one message head, from first byte read to headers-complete",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
