package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	HistoryRequests    prometheus.Counter
	StatsRequests      prometheus.Counter
	MatchesEnriched    prometheus.Counter
	MatchesDropped     prometheus.Counter
	EnrichmentDuration prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
