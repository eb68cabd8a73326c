package metrics

import "sync"

// Mock is a no-op Metrics implementation that records call counts for tests.
type Mock struct {
	mu sync.Mutex

	HistoryRequestsCount int
	StatsRequestsCount   int
	MatchesEnrichedCount int
	MatchesDroppedCount  int
	Durations            []float64
	StartupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncHistoryRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistoryRequestsCount++
}

func (m *Mock) IncStatsRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsRequestsCount++
}

func (m *Mock) IncMatchesEnriched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesEnrichedCount++
}

func (m *Mock) IncMatchesDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesDroppedCount++
}

func (m *Mock) ObserveEnrichmentDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Durations = append(m.Durations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
