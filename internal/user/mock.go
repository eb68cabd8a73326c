package user

// MockStore is a mock implementation of the UserStore interface for testing.
type MockStore struct {
	GetProfileFunc func(id int64) (*Profile, error)
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

var _ UserStore = (*MockStore)(nil)

func (m *MockStore) GetProfile(id int64) (*Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(id)
	}
	return &Profile{ID: id}, nil
}
