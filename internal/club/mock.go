package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertTeamsFunc               func(teams []Team) error
	GetTeamsFunc                  func(teamIDs []string) ([]Team, error)
	GetAllTeamsFunc               func() ([]Team, error)
	UpsertCompetitionFunc         func(comp *Competition) error
	GetCompetitionFunc            func(competitionID string) (*Competition, error)
	GetCompetitionsFunc           func() ([]Competition, error)
	UpsertMatchFunc               func(match *Match) error
	GetMatchesForCompetitionsFunc func(competitionIDs []string) ([]Match, error)
	GetAllMatchesFunc             func() ([]Match, error)
	GetMatchesByTeamFunc          func(teamID string) ([]Match, error)
	GetIndexMatchesByTeamFunc     func(teamID string) ([]Match, error)
	UpsertPlayersFunc             func(players []Player) error
	GetPlayersFunc                func() ([]Player, error)
	SetManualStatFunc             func(playerID, seasonKey string, row ManualCompetitionStat) error
	SetManualStandingsFunc        func(competitionID string, rows []Standing) error
	GetManualStandingsFunc        func(competitionID string) ([]Standing, error)
	DataVersionFunc               func() (uint64, error)
	BumpDataVersionFunc           func() (uint64, error)
	ClearFunc                     func()
	ClearMatchFunc                func(matchID string)

	// Call records
	UpsertMatchCalls        []*Match
	UpsertCompetitionCalls  []*Competition
	SetManualStatCalls      []SetManualStatCall
	SetManualStandingsCalls []SetManualStandingsCall
	BumpDataVersionCalls    int
	ClearMatchCalls         []string
}

type SetManualStatCall struct {
	PlayerID  string
	SeasonKey string
	Row       ManualCompetitionStat
}

type SetManualStandingsCall struct {
	CompetitionID string
	Rows          []Standing
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchCalls = nil
	m.UpsertCompetitionCalls = nil
	m.SetManualStatCalls = nil
	m.SetManualStandingsCalls = nil
	m.BumpDataVersionCalls = 0
	m.ClearMatchCalls = nil
}

func (m *MockStore) UpsertTeams(teams []Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertTeamsFunc != nil {
		return m.UpsertTeamsFunc(teams)
	}
	return nil
}

func (m *MockStore) GetTeams(teamIDs []string) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc(teamIDs)
	}
	return nil, nil
}

func (m *MockStore) GetAllTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllTeamsFunc != nil {
		return m.GetAllTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) UpsertCompetition(comp *Competition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCompetitionCalls = append(m.UpsertCompetitionCalls, comp)
	if m.UpsertCompetitionFunc != nil {
		return m.UpsertCompetitionFunc(comp)
	}
	return nil
}

func (m *MockStore) GetCompetition(competitionID string) (*Competition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCompetitionFunc != nil {
		return m.GetCompetitionFunc(competitionID)
	}
	return nil, nil
}

func (m *MockStore) GetCompetitions() ([]Competition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCompetitionsFunc != nil {
		return m.GetCompetitionsFunc()
	}
	return nil, nil
}

func (m *MockStore) UpsertMatch(match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchCalls = append(m.UpsertMatchCalls, match)
	if m.UpsertMatchFunc != nil {
		return m.UpsertMatchFunc(match)
	}
	return nil
}

func (m *MockStore) GetMatchesForCompetitions(competitionIDs []string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchesForCompetitionsFunc != nil {
		return m.GetMatchesForCompetitionsFunc(competitionIDs)
	}
	return nil, nil
}

func (m *MockStore) GetAllMatches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) GetMatchesByTeam(teamID string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchesByTeamFunc != nil {
		return m.GetMatchesByTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) GetIndexMatchesByTeam(teamID string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetIndexMatchesByTeamFunc != nil {
		return m.GetIndexMatchesByTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) UpsertPlayers(players []Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SetManualStat(playerID, seasonKey string, row ManualCompetitionStat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetManualStatCalls = append(m.SetManualStatCalls, SetManualStatCall{playerID, seasonKey, row})
	if m.SetManualStatFunc != nil {
		return m.SetManualStatFunc(playerID, seasonKey, row)
	}
	return nil
}

func (m *MockStore) SetManualStandings(competitionID string, rows []Standing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetManualStandingsCalls = append(m.SetManualStandingsCalls, SetManualStandingsCall{competitionID, rows})
	if m.SetManualStandingsFunc != nil {
		return m.SetManualStandingsFunc(competitionID, rows)
	}
	return nil
}

func (m *MockStore) GetManualStandings(competitionID string) ([]Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetManualStandingsFunc != nil {
		return m.GetManualStandingsFunc(competitionID)
	}
	return nil, nil
}

func (m *MockStore) DataVersion() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DataVersionFunc != nil {
		return m.DataVersionFunc()
	}
	return 0, nil
}

func (m *MockStore) BumpDataVersion() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BumpDataVersionCalls++
	if m.BumpDataVersionFunc != nil {
		return m.BumpDataVersionFunc()
	}
	return uint64(m.BumpDataVersionCalls), nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearMatch(matchID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, matchID)
	if m.ClearMatchFunc != nil {
		m.ClearMatchFunc(matchID)
	}
}
