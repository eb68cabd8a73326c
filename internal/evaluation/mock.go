package evaluation

import "sync"

// MockStore is a mock implementation of the EvaluationStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateFunc               func(eval *Evaluation) error
	UpdateFunc               func(eval *Evaluation) error
	DeleteFunc               func(id, authorID int64) error
	ListByAuthorFunc         func(authorID int64) ([]Evaluation, error)
	ListForPlayerFunc        func(steamID64 string) ([]Evaluation, error)
	EvaluatedTargetsFunc     func(authorID, matchID int64) (map[string]struct{}, error)
	DistinctTargetsFunc      func(authorID int64) ([]string, error)
	UniqueTagsFunc           func(authorID int64) ([]string, error)
	UpdateLastKnownNamesFunc func(names map[string]string) (int, error)

	EvaluatedTargetsCalls [][2]int64
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

var _ EvaluationStore = (*MockStore)(nil)

func (m *MockStore) Create(eval *Evaluation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(eval)
	}
	return nil
}

func (m *MockStore) Update(eval *Evaluation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(eval)
	}
	return nil
}

func (m *MockStore) Delete(id, authorID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id, authorID)
	}
	return nil
}

func (m *MockStore) ListByAuthor(authorID int64) ([]Evaluation, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(authorID)
	}
	return []Evaluation{}, nil
}

func (m *MockStore) ListForPlayer(steamID64 string) ([]Evaluation, error) {
	if m.ListForPlayerFunc != nil {
		return m.ListForPlayerFunc(steamID64)
	}
	return []Evaluation{}, nil
}

func (m *MockStore) EvaluatedTargets(authorID, matchID int64) (map[string]struct{}, error) {
	m.mu.Lock()
	m.EvaluatedTargetsCalls = append(m.EvaluatedTargetsCalls, [2]int64{authorID, matchID})
	m.mu.Unlock()
	if m.EvaluatedTargetsFunc != nil {
		return m.EvaluatedTargetsFunc(authorID, matchID)
	}
	return map[string]struct{}{}, nil
}

func (m *MockStore) DistinctTargets(authorID int64) ([]string, error) {
	if m.DistinctTargetsFunc != nil {
		return m.DistinctTargetsFunc(authorID)
	}
	return []string{}, nil
}

func (m *MockStore) UniqueTags(authorID int64) ([]string, error) {
	if m.UniqueTagsFunc != nil {
		return m.UniqueTagsFunc(authorID)
	}
	return []string{}, nil
}

func (m *MockStore) UpdateLastKnownNames(names map[string]string) (int, error) {
	if m.UpdateLastKnownNamesFunc != nil {
		return m.UpdateLastKnownNamesFunc(names)
	}
	return 0, nil
}
