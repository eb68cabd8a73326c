package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"peerscout/internal/enrichment"
	"peerscout/internal/evaluation"
	"peerscout/internal/opendota"
	"peerscout/internal/steam"
	"peerscout/internal/user"
)

func (s *Server) HealthCheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// MatchHistoryHandler returns the caller's recent matches, enriched with
// identifier translation and evaluation flags. Remote failures shrink the
// result instead of failing it.
func (s *Server) MatchHistoryHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, steamID := identityFromContext(r)

		limit := enrichment.DefaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		s.Metrics.IncHistoryRequests()
		matches := s.Enricher.GetEnrichedHistory(steamID, userID, limit)
		respondJSON(w, http.StatusOK, matches)
	})
}

// MatchPlayersHandler returns the enriched participant list for one match.
// Unlike history, an unavailable match is an error here.
func (s *Server) MatchPlayersHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		matchID, err := strconv.ParseInt(r.PathValue("matchID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid match id", http.StatusBadRequest)
			return
		}

		match, err := s.Enricher.EnrichMatch(matchID, userID)
		if err != nil {
			if errors.Is(err, opendota.ErrMatchUnavailable) {
				http.Error(w, "match details unavailable", http.StatusBadGateway)
				return
			}
			log.Error("Failed to enrich match", "matchID", matchID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, match)
	})
}

func (s *Server) MyProfileHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		profile, err := s.Users.GetProfile(userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to load profile", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	})
}

func (s *Server) UserStatsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, steamID := identityFromContext(r)

		userStats, err := s.Stats.ComputeUserStats(r.Context(), userID, steamID)
		if err != nil {
			log.Error("Failed to compute user stats", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, userStats)
	})
}

// RefreshNamesHandler re-resolves the display names of every player the
// caller has evaluated, batching provider lookups to its documented maximum.
func (s *Server) RefreshNamesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		targets, err := s.Evaluations.DistinctTargets(userID)
		if err != nil {
			log.Error("Failed to list refresh targets", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		names := make(map[string]string)
		for start := 0; start < len(targets); start += steam.MaxBatchSize {
			end := min(start+steam.MaxBatchSize, len(targets))
			for _, summary := range s.SteamClient.GetPlayerSummaries(targets[start:end]) {
				if summary.PersonaName != "" {
					names[summary.SteamID] = summary.PersonaName
				}
			}
		}

		updated, err := s.Evaluations.UpdateLastKnownNames(names)
		if err != nil {
			log.Error("Failed to update player names", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Refreshed player names", "userID", userID, "targets", len(targets), "updated", updated)
		respondJSON(w, http.StatusOK, map[string]int{"updated": updated})
	})
}

// evaluationRequest is the JSON write payload shared by create and update.
type evaluationRequest struct {
	TargetSteamID string   `json:"target_steam_id"`
	TargetName    string   `json:"target_name"`
	Rating        int      `json:"rating"`
	Notes         string   `json:"notes"`
	MatchID       *int64   `json:"match_id"`
	Role          string   `json:"role"`
	HeroID        int      `json:"hero_id"`
	Tags          []string `json:"tags"`
}

func (s *Server) CreateEvaluationHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		var req evaluationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		targetName := req.TargetName
		if targetName == "" && req.TargetSteamID != "" {
			if summaries := s.SteamClient.GetPlayerSummaries([]string{req.TargetSteamID}); len(summaries) > 0 {
				targetName = summaries[0].PersonaName
			}
		}

		eval := &evaluation.Evaluation{
			AuthorID:      userID,
			TargetSteamID: req.TargetSteamID,
			TargetName:    targetName,
			Rating:        req.Rating,
			Notes:         req.Notes,
			MatchID:       req.MatchID,
			Role:          req.Role,
			HeroID:        req.HeroID,
			Tags:          req.Tags,
		}
		if err := s.Evaluations.Create(eval); err != nil {
			switch {
			case errors.Is(err, evaluation.ErrDuplicate):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, evaluation.ErrInvalid):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Error("Failed to create evaluation", "userID", userID, "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		respondJSON(w, http.StatusCreated, eval)
	})
}

func (s *Server) MyEvaluationsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		evals, err := s.Evaluations.ListByAuthor(userID)
		if err != nil {
			log.Error("Failed to list evaluations", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if evals == nil {
			evals = []evaluation.Evaluation{}
		}
		respondJSON(w, http.StatusOK, evals)
	})
}

func (s *Server) PlayerEvaluationsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		steamID := r.PathValue("steamID")
		if steamID == "" {
			http.Error(w, "steam id is required", http.StatusBadRequest)
			return
		}

		evals, err := s.Evaluations.ListForPlayer(steamID)
		if err != nil {
			log.Error("Failed to list player evaluations", "steamID", steamID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if evals == nil {
			evals = []evaluation.Evaluation{}
		}
		respondJSON(w, http.StatusOK, evals)
	})
}

func (s *Server) UpdateEvaluationHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid evaluation id", http.StatusBadRequest)
			return
		}

		var req evaluationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		eval := &evaluation.Evaluation{
			ID:       id,
			AuthorID: userID,
			Rating:   req.Rating,
			Notes:    req.Notes,
			Role:     req.Role,
			HeroID:   req.HeroID,
			Tags:     req.Tags,
		}
		if err := s.Evaluations.Update(eval); err != nil {
			switch {
			case errors.Is(err, evaluation.ErrNotFound):
				http.Error(w, "evaluation not found", http.StatusNotFound)
			case errors.Is(err, evaluation.ErrInvalid):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Error("Failed to update evaluation", "userID", userID, "id", id, "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	})
}

func (s *Server) DeleteEvaluationHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid evaluation id", http.StatusBadRequest)
			return
		}

		if err := s.Evaluations.Delete(id, userID); err != nil {
			if errors.Is(err, evaluation.ErrNotFound) {
				http.Error(w, "evaluation not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to delete evaluation", "userID", userID, "id", id, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) UniqueTagsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := identityFromContext(r)

		tags, err := s.Evaluations.UniqueTags(userID)
		if err != nil {
			log.Error("Failed to list tags", "userID", userID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string][]string{"tags": tags})
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
