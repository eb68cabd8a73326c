package http

import (
	"net/http"

	"peerscout/internal/config"
	"peerscout/internal/enrichment"
	"peerscout/internal/evaluation"
	"peerscout/internal/metrics"
	"peerscout/internal/stats"
	"peerscout/internal/steam"
	"peerscout/internal/user"
)

type Server struct {
	Evaluations    evaluation.EvaluationStore
	Users          user.UserStore
	SteamClient    steam.SteamClient
	Enricher       enrichment.Enricher
	Stats          *stats.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
