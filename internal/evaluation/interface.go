package evaluation

// EvaluationStore defines the persistence operations for user-authored peer
// evaluations. Writes belong to the CRUD surface; the enrichment and stats
// pipelines only ever read.
type EvaluationStore interface {
	Create(eval *Evaluation) error
	Update(eval *Evaluation) error
	Delete(id, authorID int64) error
	ListByAuthor(authorID int64) ([]Evaluation, error)
	ListForPlayer(steamID64 string) ([]Evaluation, error)
	EvaluatedTargets(authorID, matchID int64) (map[string]struct{}, error)
	DistinctTargets(authorID int64) ([]string, error)
	UniqueTags(authorID int64) ([]string, error)
	UpdateLastKnownNames(names map[string]string) (int, error)
}
