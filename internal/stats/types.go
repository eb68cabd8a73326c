package stats

import "peerscout/internal/user"

// HistoryWindow is the number of recent matches the aggregator folds over.
const HistoryWindow = 20

// TopTagCount bounds the most-used tag list.
const TopTagCount = 5

// UserStats is the derived dashboard summary for one user. It is recomputed
// on every request and never stored.
type UserStats struct {
	Profile              *user.Profile `json:"profile"`
	TotalEvaluations     int           `json:"total_evaluations"`
	AverageRating        float64       `json:"average_rating"`
	MostUsedTags         []string      `json:"most_used_tags"`
	WinsLast20           int           `json:"wins_last_20"`
	AverageMatchTime     int           `json:"average_match_time"`
	MostUsedHeroID       int           `json:"most_used_hero_id"`
	MostFacedHeroID      int           `json:"most_faced_hero_id"`
	EvaluationPercentage int           `json:"evaluation_percentage"`
}
