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

func NewServer(evaluations evaluation.EvaluationStore, users user.UserStore, steamClient steam.SteamClient, enricher enrichment.Enricher, statsSvc *stats.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Evaluations:    evaluations,
		Users:          users,
		SteamClient:    steamClient,
		Enricher:       enricher,
		Stats:          statsSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Session establishment is the auth layer's concern; identityMiddleware
	// only lifts the identity headers it injects into the request context.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("GET /matches/history", s.protected(s.MatchHistoryHandler()))
	s.Router.Handle("GET /matches/{matchID}/players", s.protected(s.MatchPlayersHandler()))

	s.Router.Handle("GET /users/me", s.protected(s.MyProfileHandler()))
	s.Router.Handle("GET /users/me/stats", s.protected(s.UserStatsHandler()))
	s.Router.Handle("POST /users/me/refresh-names", s.protected(s.RefreshNamesHandler()))

	s.Router.Handle("POST /evaluations", s.protected(s.CreateEvaluationHandler()))
	s.Router.Handle("GET /evaluations", s.protected(s.MyEvaluationsHandler()))
	s.Router.Handle("GET /evaluations/tags", s.protected(s.UniqueTagsHandler()))
	s.Router.Handle("GET /evaluations/player/{steamID}", s.protected(s.PlayerEvaluationsHandler()))
	s.Router.Handle("PUT /evaluations/{id}", s.protected(s.UpdateEvaluationHandler()))
	s.Router.Handle("DELETE /evaluations/{id}", s.protected(s.DeleteEvaluationHandler()))
}

func (s *Server) protected(h http.Handler) http.Handler {
	return Chain(h, requestIDMiddleware, paramsMiddleware, identityMiddleware)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
