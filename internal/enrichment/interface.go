package enrichment

// EvaluationStore defines the store operations required by the enrichment engine.
type EvaluationStore interface {
	EvaluatedTargets(authorID, matchID int64) (map[string]struct{}, error)
}

// Enricher defines the operations the HTTP layer and the stats aggregator
// consume. Implemented by *Service.
type Enricher interface {
	EnrichMatch(matchID, authorID int64) (*EnrichedMatch, error)
	GetEnrichedHistory(steamID64 string, authorID int64, limit int) []*EnrichedMatch
}
