package opendota

import "sync"

// MockClient is a mock implementation of the OpenDotaClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetMatchHistoryFunc func(steamID64 string, limit int) []MatchSummary
	GetMatchDetailsFunc func(matchID int64) (*MatchDetails, error)

	// Call records
	GetMatchHistoryCalls []string
	GetMatchDetailsCalls []int64
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMatchHistoryCalls = nil
	m.GetMatchDetailsCalls = nil
}

func (m *MockClient) GetMatchHistory(steamID64 string, limit int) []MatchSummary {
	m.mu.Lock()
	m.GetMatchHistoryCalls = append(m.GetMatchHistoryCalls, steamID64)
	fn := m.GetMatchHistoryFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(steamID64, limit)
	}
	return []MatchSummary{}
}

func (m *MockClient) GetMatchDetails(matchID int64) (*MatchDetails, error) {
	m.mu.Lock()
	m.GetMatchDetailsCalls = append(m.GetMatchDetailsCalls, matchID)
	fn := m.GetMatchDetailsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(matchID)
	}
	return &MatchDetails{MatchID: matchID}, nil
}
