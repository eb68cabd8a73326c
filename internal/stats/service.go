package stats

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"peerscout/internal/enrichment"
	"peerscout/internal/evaluation"
	"peerscout/internal/metrics"
	"peerscout/internal/user"
)

// Service folds local evaluation records and enriched match history into one
// derived summary.
type Service struct {
	evals    EvaluationStore
	users    UserStore
	enricher Enricher
	metrics  metrics.Metrics
}

// New creates a new stats Service.
func New(evals EvaluationStore, users UserStore, enricher Enricher, metricsSvc metrics.Metrics) *Service {
	return &Service{
		evals:    evals,
		users:    users,
		enricher: enricher,
		metrics:  metricsSvc,
	}
}

// ComputeUserStats builds the dashboard summary for one user. The three
// inputs are read concurrently; if any local read fails the whole operation
// fails, there is no partial result. History shrinkage is not a failure.
func (s *Service) ComputeUserStats(ctx context.Context, authorID int64, steamID64 string) (*UserStats, error) {
	s.metrics.IncStatsRequests()

	var (
		evals   []evaluation.Evaluation
		profile *user.Profile
		history []*enrichment.EnrichedMatch
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evals, err = s.evals.ListByAuthor(authorID)
		if err != nil {
			return fmt.Errorf("loading evaluations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profile, err = s.users.GetProfile(authorID)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Degrades internally; never errors.
		history = s.enricher.GetEnrichedHistory(steamID64, authorID, HistoryWindow)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &UserStats{
		Profile:      profile,
		MostUsedTags: []string{},
	}
	foldEvaluations(stats, evals)
	foldMatches(stats, history, steamID64)
	return stats, nil
}

func foldEvaluations(stats *UserStats, evals []evaluation.Evaluation) {
	stats.TotalEvaluations = len(evals)
	if len(evals) == 0 {
		return
	}

	ratingSum := 0
	var tags []string
	for _, eval := range evals {
		ratingSum += eval.Rating
		tags = append(tags, eval.Tags...)
	}
	stats.AverageRating = math.Round(float64(ratingSum)/float64(len(evals))*100) / 100
	stats.MostUsedTags = topByFrequency(tags, TopTagCount)
}

func foldMatches(stats *UserStats, history []*enrichment.EnrichedMatch, steamID64 string) {
	if len(history) == 0 {
		return
	}

	var (
		durationSum    int
		ownHeroes      []int
		otherHeroes    []int
		opponentsTotal int
		evaluatedCount int
	)

	for _, match := range history {
		durationSum += match.Duration
		for _, p := range match.Players {
			if p.SteamID64 == steamID64 {
				ownHeroes = append(ownHeroes, p.HeroID)
				if p.Win {
					stats.WinsLast20++
				}
				continue
			}
			otherHeroes = append(otherHeroes, p.HeroID)
			// Anonymous participants cannot be evaluated and are excluded
			// from both sides of the coverage ratio.
			if p.SteamID64 == "" {
				continue
			}
			opponentsTotal++
			if p.AlreadyEvaluated {
				evaluatedCount++
			}
		}
	}

	stats.AverageMatchTime = int(math.Round(float64(durationSum) / float64(len(history))))
	if hero, ok := mostFrequent(ownHeroes); ok {
		stats.MostUsedHeroID = hero
	}
	if hero, ok := mostFrequent(otherHeroes); ok {
		stats.MostFacedHeroID = hero
	}
	if opponentsTotal > 0 {
		stats.EvaluationPercentage = int(math.Round(float64(evaluatedCount) / float64(opponentsTotal) * 100))
	}
}

// topByFrequency returns the n most frequent values, descending. Ties keep
// first-encountered order.
func topByFrequency[T comparable](values []T, n int) []T {
	counts := make(map[T]int)
	var order []T
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	// Insertion sort by count; order is already first-encountered, and the
	// strict comparison keeps it stable across equal counts.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	if len(order) > n {
		order = order[:n]
	}
	result := make([]T, len(order))
	copy(result, order)
	return result
}

func mostFrequent[T comparable](values []T) (T, bool) {
	top := topByFrequency(values, 1)
	if len(top) == 0 {
		var zero T
		return zero, false
	}
	return top[0], true
}
