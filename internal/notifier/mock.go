package notifier

import (
	"sync"

	"github.com/okrbeck/clubtable/internal/club"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendStandingsCalls []struct {
		Comp      *club.Competition
		Standings []club.Standing
	}
	SendLeaderboardCalls []struct {
		Entries []LeaderboardEntry
		Scope   string
	}
	SendPlayerStatsCalls []struct {
		Name  string
		Stats club.AggregatedPlayerStats
	}
	SendPlayerNotFoundCalls []string

	// Spies for format functions
	FormatStandingsResponseFunc      func(comp *club.Competition, standings []club.Standing) (any, error)
	FormatLeaderboardResponseFunc    func(entries []LeaderboardEntry, scope string) (any, error)
	FormatPlayerStatsResponseFunc    func(name string, stats club.AggregatedPlayerStats) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)

	// Call records for format functions
	LastStandingsResponse      any
	LastLeaderboardResponse    any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
	m.LastStandingsResponse = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendStandings(comp *club.Competition, standings []club.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		Comp      *club.Competition
		Standings []club.Standing
	}{comp, standings})
	return nil
}

func (m *Mock) SendLeaderboard(entries []LeaderboardEntry, scope string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, struct {
		Entries []LeaderboardEntry
		Scope   string
	}{entries, scope})
	return nil
}

func (m *Mock) SendPlayerStats(name string, stats club.AggregatedPlayerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Name  string
		Stats club.AggregatedPlayerStats
	}{name, stats})
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return nil
}

func (m *Mock) FormatStandingsResponse(comp *club.Competition, standings []club.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		resp, err := m.FormatStandingsResponseFunc(comp, standings)
		m.LastStandingsResponse = resp
		return resp, err
	}
	return "formatted_standings", nil
}

func (m *Mock) FormatLeaderboardResponse(entries []LeaderboardEntry, scope string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(entries, scope)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(name string, stats club.AggregatedPlayerStats) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStatsResponseFunc != nil {
		resp, err := m.FormatPlayerStatsResponseFunc(name, stats)
		m.LastPlayerStatsResponse = resp
		return resp, err
	}
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err := m.FormatPlayerNotFoundResponseFunc(query)
		m.LastPlayerNotFoundResponse = resp
		return resp, err
	}
	return "formatted_player_not_found", nil
}
