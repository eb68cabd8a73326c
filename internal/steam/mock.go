package steam

import "sync"

// MockClient is a mock implementation of the SteamClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	GetPlayerSummariesFunc func(steamIDs []string) []PlayerSummary

	GetPlayerSummariesCalls [][]string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerSummariesCalls = nil
}

func (m *MockClient) GetPlayerSummaries(steamIDs []string) []PlayerSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerSummariesCalls = append(m.GetPlayerSummariesCalls, steamIDs)
	if m.GetPlayerSummariesFunc != nil {
		return m.GetPlayerSummariesFunc(steamIDs)
	}
	return []PlayerSummary{}
}
