package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		HistoryRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "peerscout_history_requests_total",
			Help: "The total number of enriched match history requests served.",
		}),
		StatsRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "peerscout_stats_requests_total",
			Help: "The total number of user statistics requests served.",
		}),
		MatchesEnriched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "peerscout_matches_enriched_total",
			Help: "The total number of matches successfully enriched.",
		}),
		MatchesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "peerscout_matches_dropped_total",
			Help: "The total number of matches dropped from history batches due to failed enrichment.",
		}),
		EnrichmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "peerscout_match_enrichment_duration_seconds",
			Help:    "The duration of individual match enrichment.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peerscout_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.HistoryRequests,
		s.StatsRequests,
		s.MatchesEnriched,
		s.MatchesDropped,
		s.EnrichmentDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncHistoryRequests() {
	s.HistoryRequests.Inc()
}

func (s *Service) IncStatsRequests() {
	s.StatsRequests.Inc()
}

func (s *Service) IncMatchesEnriched() {
	s.MatchesEnriched.Inc()
}

func (s *Service) IncMatchesDropped() {
	s.MatchesDropped.Inc()
}

func (s *Service) ObserveEnrichmentDuration(duration float64) {
	s.EnrichmentDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
