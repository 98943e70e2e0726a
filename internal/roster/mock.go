package roster

import "sync"

// MockProvider is a mock implementation of the Provider interface for testing.
type MockProvider struct {
	mu sync.Mutex

	TeamRosterFunc  func(teamID, seasonScope string) ([]string, error)
	TeamRosterCalls []TeamRosterCall
}

type TeamRosterCall struct {
	TeamID      string
	SeasonScope string
}

// NewMock creates a new mock instance.
func NewMock() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) TeamRoster(teamID, seasonScope string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TeamRosterCalls = append(m.TeamRosterCalls, TeamRosterCall{teamID, seasonScope})
	if m.TeamRosterFunc != nil {
		return m.TeamRosterFunc(teamID, seasonScope)
	}
	return nil, nil
}
