package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerscout/internal/enrichment"
	"peerscout/internal/evaluation"
	"peerscout/internal/metrics"
	"peerscout/internal/stats"
	"peerscout/internal/user"
)

const (
	userSteamID  = "76561198074259229"
	otherSteamID = "76561198074259230"
)

// stubEnricher returns a fixed history.
type stubEnricher struct {
	history []*enrichment.EnrichedMatch
}

func (s *stubEnricher) GetEnrichedHistory(steamID64 string, authorID int64, limit int) []*enrichment.EnrichedMatch {
	return s.history
}

func newService(evals []evaluation.Evaluation, history []*enrichment.EnrichedMatch) *stats.Service {
	evalStore := evaluation.NewMockStore()
	evalStore.ListByAuthorFunc = func(authorID int64) ([]evaluation.Evaluation, error) {
		return evals, nil
	}
	userStore := user.NewMockStore()
	userStore.GetProfileFunc = func(id int64) (*user.Profile, error) {
		return &user.Profile{ID: id, SteamID: userSteamID}, nil
	}
	return stats.New(evalStore, userStore, &stubEnricher{history: history}, metrics.NewMock())
}

// matchWithUser builds a match where the user's own row is present, plus one
// named and one anonymous opponent.
func matchWithUser(matchID int64, duration int, userWon bool, userHero int, facedHero int) *enrichment.EnrichedMatch {
	return &enrichment.EnrichedMatch{
		MatchID:  matchID,
		Duration: duration,
		Players: []enrichment.EnrichedPlayer{
			{SteamID64: userSteamID, HeroID: userHero, Win: userWon},
			{SteamID64: otherSteamID, HeroID: facedHero, AlreadyEvaluated: true},
			{SteamID64: "", HeroID: 99}, // anonymous
		},
	}
}

func TestComputeUserStats_NoEvaluations(t *testing.T) {
	svc := newService(nil, nil)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalEvaluations)
	assert.Equal(t, 0.0, got.AverageRating)
	assert.Empty(t, got.MostUsedTags)
	assert.Equal(t, 0, got.WinsLast20)
	assert.Equal(t, 0, got.AverageMatchTime)
	assert.Equal(t, 0, got.EvaluationPercentage)
	require.NotNil(t, got.Profile)
	assert.Equal(t, int64(1), got.Profile.ID)
}

func TestComputeUserStats_AverageRating(t *testing.T) {
	evals := []evaluation.Evaluation{{Rating: 3}, {Rating: 4}, {Rating: 5}}
	svc := newService(evals, nil)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalEvaluations)
	assert.Equal(t, 4.00, got.AverageRating)
}

func TestComputeUserStats_AverageRatingRounding(t *testing.T) {
	evals := []evaluation.Evaluation{{Rating: 3}, {Rating: 4}, {Rating: 4}}
	svc := newService(evals, nil)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)
	assert.Equal(t, 3.67, got.AverageRating)
}

func TestComputeUserStats_MostUsedTags(t *testing.T) {
	evals := []evaluation.Evaluation{
		{Rating: 3, Tags: []string{"tilted", "friendly"}},
		{Rating: 3, Tags: []string{"friendly", "carry"}},
		{Rating: 3, Tags: []string{"friendly", "tilted", "flamer", "smart", "quiet", "leader"}},
	}
	svc := newService(evals, nil)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)

	require.Len(t, got.MostUsedTags, 5)
	assert.Equal(t, "friendly", got.MostUsedTags[0])
	assert.Equal(t, "tilted", got.MostUsedTags[1])
	// Single-use tags keep first-encountered order.
	assert.Equal(t, []string{"carry", "flamer", "smart"}, got.MostUsedTags[2:])
}

func TestComputeUserStats_MatchFigures(t *testing.T) {
	var history []*enrichment.EnrichedMatch
	for i := 0; i < 20; i++ {
		hero := 7
		if i >= 15 {
			hero = 3
		}
		history = append(history, matchWithUser(int64(i+1), 1800+i*60, i < 12, hero, 21))
	}
	svc := newService(nil, history)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)

	assert.Equal(t, 12, got.WinsLast20)
	// durations 1800..2940 average to 2370
	assert.Equal(t, 2370, got.AverageMatchTime)
	assert.Equal(t, 7, got.MostUsedHeroID)
	assert.Equal(t, 21, got.MostFacedHeroID, "tie with the anonymous hero breaks to first-encountered")
	assert.Equal(t, 100, got.EvaluationPercentage, "every resolvable opponent was evaluated")
}

func TestComputeUserStats_EvaluationPercentageAllAnonymous(t *testing.T) {
	history := []*enrichment.EnrichedMatch{
		{
			MatchID:  1,
			Duration: 1800,
			Players: []enrichment.EnrichedPlayer{
				{SteamID64: userSteamID, HeroID: 7, Win: true},
				{SteamID64: "", HeroID: 4},
				{SteamID64: "", HeroID: 5},
			},
		},
	}
	svc := newService(nil, history)

	got, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.EvaluationPercentage)
}

func TestComputeUserStats_FailsWhenAnyReadFails(t *testing.T) {
	t.Run("evaluation read", func(t *testing.T) {
		evalStore := evaluation.NewMockStore()
		evalStore.ListByAuthorFunc = func(authorID int64) ([]evaluation.Evaluation, error) {
			return nil, errors.New("disk exploded")
		}
		svc := stats.New(evalStore, user.NewMockStore(), &stubEnricher{}, metrics.NewMock())

		_, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
		assert.Error(t, err)
	})

	t.Run("profile read", func(t *testing.T) {
		userStore := user.NewMockStore()
		userStore.GetProfileFunc = func(id int64) (*user.Profile, error) {
			return nil, user.ErrNotFound
		}
		svc := stats.New(evaluation.NewMockStore(), userStore, &stubEnricher{}, metrics.NewMock())

		_, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestComputeUserStats_Idempotent(t *testing.T) {
	evals := []evaluation.Evaluation{{Rating: 5, Tags: []string{"friendly"}}}
	history := []*enrichment.EnrichedMatch{matchWithUser(1, 1800, true, 7, 21)}
	svc := newService(evals, history)

	first, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)
	second, err := svc.ComputeUserStats(context.Background(), 1, userSteamID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
