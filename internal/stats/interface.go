package stats

import (
	"peerscout/internal/enrichment"
	"peerscout/internal/evaluation"
	"peerscout/internal/user"
)

// EvaluationStore defines the store operations required by the aggregator.
type EvaluationStore interface {
	ListByAuthor(authorID int64) ([]evaluation.Evaluation, error)
}

// UserStore defines the profile read required by the aggregator.
type UserStore interface {
	GetProfile(id int64) (*user.Profile, error)
}

// Enricher supplies the enriched match history the aggregator folds over.
type Enricher interface {
	GetEnrichedHistory(steamID64 string, authorID int64, limit int) []*enrichment.EnrichedMatch
}
