package opendota

// OpenDotaClient defines the interface for interacting with the OpenDota API.
// This allows for mock implementations to be used in tests.
//
// The two operations deliberately carry different error contracts: history
// listing degrades to an empty slice, while match detail retrieval fails
// loudly with ErrMatchUnavailable. Callers rely on the asymmetry.
type OpenDotaClient interface {
	GetMatchHistory(steamID64 string, limit int) []MatchSummary
	GetMatchDetails(matchID int64) (*MatchDetails, error)
}
