package enrichment

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"peerscout/internal/metrics"
	"peerscout/internal/opendota"
	"peerscout/internal/steamid"
)

// Service builds locally annotated views of remote match data.
type Service struct {
	opendota opendota.OpenDotaClient
	evals    EvaluationStore
	metrics  metrics.Metrics
}

// New creates a new enrichment Service.
func New(opendotaClient opendota.OpenDotaClient, evals EvaluationStore, metricsSvc metrics.Metrics) *Service {
	return &Service{
		opendota: opendotaClient,
		evals:    evals,
		metrics:  metricsSvc,
	}
}

var _ Enricher = (*Service)(nil)

// EnrichMatch fetches one match and annotates every participant with
// identifier translation, the author's already-evaluated flag, and display
// name fallbacks. Remote failure propagates as opendota.ErrMatchUnavailable;
// there are no retries.
func (s *Service) EnrichMatch(matchID, authorID int64) (*EnrichedMatch, error) {
	start := time.Now()

	details, err := s.opendota.GetMatchDetails(matchID)
	if err != nil {
		return nil, err
	}

	// One batched lookup per match, never one per participant.
	evaluated, err := s.evals.EvaluatedTargets(authorID, matchID)
	if err != nil {
		return nil, fmt.Errorf("loading evaluated targets for match %d: %w", matchID, err)
	}

	players := make([]EnrichedPlayer, 0, len(details.Players))
	for _, p := range details.Players {
		player := EnrichedPlayer{
			SteamID32:   p.AccountID,
			PersonaName: p.PersonaName,
			Avatar:      p.Avatar,
			HeroID:      p.HeroID,
			IsRadiant:   p.IsRadiant,
			Win:         p.Win == 1,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			NetWorth:    p.NetWorth,
			PlayerSlot:  p.PlayerSlot,
			Items:       p.Items,
			Backpack:    p.Backpack,
		}
		if steamID64, ok := steamid.ToSteamID64(p.AccountID); ok {
			player.SteamID64 = steamID64
			_, player.AlreadyEvaluated = evaluated[steamID64]
		}
		if player.PersonaName == "" {
			player.PersonaName = anonymousName
		}
		players = append(players, player)
	}

	s.metrics.IncMatchesEnriched()
	s.metrics.ObserveEnrichmentDuration(time.Since(start).Seconds())

	return &EnrichedMatch{
		MatchID:      details.MatchID,
		RadiantWin:   details.RadiantWin,
		Duration:     details.Duration,
		StartTime:    details.StartTime,
		RadiantScore: details.RadiantScore,
		DireScore:    details.DireScore,
		Players:      players,
	}, nil
}

// GetEnrichedHistory lists a player's recent matches and enriches each one
// concurrently. Matches whose enrichment failed, or that came back without
// participants, are dropped; the survivors keep the listing's relative order.
// The result holds at most limit matches, possibly fewer.
func (s *Service) GetEnrichedHistory(steamID64 string, authorID int64, limit int) []*EnrichedMatch {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	history := s.opendota.GetMatchHistory(steamID64, limit)
	if len(history) == 0 {
		return []*EnrichedMatch{}
	}

	// One slot per listed match keeps the original order; failed slots stay
	// nil and are filtered below. A failing sibling never cancels the rest.
	results := make([]*EnrichedMatch, len(history))
	var wg sync.WaitGroup

	for i, summary := range history {
		wg.Add(1)
		go func(i int, matchID int64) {
			defer wg.Done()
			match, err := s.EnrichMatch(matchID, authorID)
			if err != nil {
				log.Error("Dropping match from history", "matchID", matchID, "error", err)
				s.metrics.IncMatchesDropped()
				return
			}
			if len(match.Players) == 0 {
				log.Warn("Dropping match with no participants", "matchID", matchID)
				s.metrics.IncMatchesDropped()
				return
			}
			results[i] = match
		}(i, summary.MatchID)
	}
	wg.Wait()

	enriched := make([]*EnrichedMatch, 0, len(results))
	for _, match := range results {
		if match != nil {
			enriched = append(enriched, match)
		}
	}
	log.Debug("Enriched match history", "listed", len(history), "survived", len(enriched))
	return enriched
}
