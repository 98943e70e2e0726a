package processor

import (
	"testing"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/notifier"
	"github.com/okrbeck/clubtable/internal/pubsub"
	"github.com/okrbeck/clubtable/internal/roster"
	"github.com/okrbeck/clubtable/internal/statcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestProcessor(store *club.MockStore) (*Processor, *club.MockStore, *roster.MockProvider, *notifier.Mock, *metrics.Mock, *pubsub.MockClient) {
	if store == nil {
		store = club.NewMock()
	}
	rosterMock := roster.NewMock()
	notifierMock := notifier.NewMock()
	metricsMock := metrics.NewMock()
	pubsubMock := pubsub.NewMock("test-project")
	cache := statcache.New(metricsMock)
	p := New(store, rosterMock, cache, notifierMock, metricsMock, pubsubMock)
	return p, store, rosterMock, notifierMock, metricsMock, pubsubMock
}

func fixtureStore() *club.MockStore {
	store := club.NewMock()
	store.GetCompetitionsFunc = func() ([]club.Competition, error) {
		return []club.Competition{
			{ID: "c1", Name: "Serie 2", Season: "2024/25", Format: club.FormatLeague, TeamIDs: []string{"tA", "tB"}},
		}, nil
	}
	store.GetAllMatchesFunc = func() ([]club.Match, error) {
		return []club.Match{
			{
				ID: "m1", CompetitionID: "c1", RoundID: "r1",
				HomeTeamID: "tA", AwayTeamID: "tB",
				HomeScore: intPtr(3), AwayScore: intPtr(1),
				PlayerLines: []club.PlayerStatLine{
					{PlayerID: "p1", MinutesPlayed: 90, Goals: 2, Assists: 1},
					{PlayerID: "p2", MinutesPlayed: 45, Goals: 1},
				},
			},
		}, nil
	}
	store.GetPlayersFunc = func() ([]club.Player, error) {
		return []club.Player{
			{ID: "p1", Name: "Anna"},
			{ID: "p2", Name: "Bo"},
		}, nil
	}
	store.DataVersionFunc = func() (uint64, error) { return 7, nil }
	return store
}

func TestPlayerStats_ComputesAndCaches(t *testing.T) {
	p, _, _, _, metricsMock, _ := newTestProcessor(fixtureStore())

	stats, err := p.PlayerStats("all", "2024/25", "all")
	require.NoError(t, err)
	assert.Equal(t, 2, stats["p1"].Goals)
	assert.Equal(t, 1, stats["p1"].Assists)
	assert.Equal(t, 1, stats["p2"].Goals)
	assert.Equal(t, 1, metricsMock.AggregationsComputedCount)

	// Same scope and data version: served from cache.
	again, err := p.PlayerStats("all", "2024/25", "all")
	require.NoError(t, err)
	assert.Equal(t, stats, again)
	assert.Equal(t, 1, metricsMock.AggregationsComputedCount)
	assert.Equal(t, 1, metricsMock.CacheHitCount)
}

func TestPlayerStats_VersionBumpRecomputes(t *testing.T) {
	store := fixtureStore()
	version := uint64(1)
	store.DataVersionFunc = func() (uint64, error) { return version, nil }
	p, _, _, _, metricsMock, _ := newTestProcessor(store)

	_, err := p.PlayerStats("all", "all", "all")
	require.NoError(t, err)

	version = 2
	_, err = p.PlayerStats("all", "all", "all")
	require.NoError(t, err)
	assert.Equal(t, 2, metricsMock.AggregationsComputedCount)
	assert.Equal(t, 0, metricsMock.CacheHitCount)
}

func TestPlayerStats_TeamScopeUsesRoster(t *testing.T) {
	p, _, rosterMock, _, _, _ := newTestProcessor(fixtureStore())
	rosterMock.TeamRosterFunc = func(teamID, seasonScope string) ([]string, error) {
		return []string{"p1"}, nil
	}

	stats, err := p.PlayerStats("tA", "2024/25", "all")
	require.NoError(t, err)
	require.Len(t, rosterMock.TeamRosterCalls, 1)
	assert.Equal(t, "tA", rosterMock.TeamRosterCalls[0].TeamID)
	assert.Contains(t, stats, "p1")
	assert.NotContains(t, stats, "p2")
}

func TestStandings_ComputesTable(t *testing.T) {
	store := fixtureStore()
	store.GetCompetitionFunc = func(competitionID string) (*club.Competition, error) {
		return &club.Competition{ID: "c1", Name: "Serie 2", Season: "2024/25", Format: club.FormatLeague, TeamIDs: []string{"tA", "tB"}}, nil
	}
	store.GetTeamsFunc = func(teamIDs []string) ([]club.Team, error) {
		return []club.Team{{ID: "tA", Name: "Alpha"}, {ID: "tB", Name: "Bravo"}}, nil
	}
	store.GetMatchesForCompetitionsFunc = func(competitionIDs []string) ([]club.Match, error) {
		return []club.Match{
			{ID: "m1", CompetitionID: "c1", RoundID: "r1", HomeTeamID: "tA", AwayTeamID: "tB", HomeScore: intPtr(3), AwayScore: intPtr(1)},
		}, nil
	}
	p, _, _, _, metricsMock, _ := newTestProcessor(store)

	comp, table, err := p.Standings("c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", comp.ID)
	require.Len(t, table, 2)
	assert.Equal(t, "tA", table[0].TeamID)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 1, table[0].Rank)
	assert.Equal(t, 1, metricsMock.StandingsComputedCount)
}

func TestTeamMatches_MergesIndexAndTree(t *testing.T) {
	store := club.NewMock()
	store.GetIndexMatchesByTeamFunc = func(teamID string) ([]club.Match, error) {
		return []club.Match{
			{ID: "m1", CompetitionID: "c1", RoundID: "r1", HomeTeamID: "tA", AwayTeamID: "tB", Date: "2025-03-01"},
			{ID: "m2", CompetitionID: "c1", RoundID: "r1", HomeTeamID: "tB", AwayTeamID: "tA", Date: "2025-03-08", Venue: "Old Ground"},
		}, nil
	}
	store.GetMatchesByTeamFunc = func(teamID string) ([]club.Match, error) {
		return []club.Match{
			{ID: "m2", CompetitionID: "c1", RoundID: "r1", HomeTeamID: "tB", AwayTeamID: "tA", Date: "2025-03-08", HomeScore: intPtr(2), AwayScore: intPtr(2)},
		}, nil
	}
	p, _, _, _, _, _ := newTestProcessor(store)

	merged, err := p.TeamMatches("tA")
	require.NoError(t, err)
	require.Len(t, merged, 2)

	// Sorted by date; the overlapping match keeps the index venue and gains
	// the tree scores.
	assert.Equal(t, "m1", merged[0].ID)
	assert.Equal(t, "m2", merged[1].ID)
	assert.Equal(t, "Old Ground", merged[1].Venue)
	require.NotNil(t, merged[1].HomeScore)
	assert.Equal(t, 2, *merged[1].HomeScore)
}

func TestRecordResult_PublishesEvents(t *testing.T) {
	store := fixtureStore()
	p, _, _, _, _, pubsubMock := newTestProcessor(store)

	match := &club.Match{
		ID: "m9", CompetitionID: "c1", RoundID: "r1",
		HomeTeamID: "tA", AwayTeamID: "tB",
		HomeScore: intPtr(1), AwayScore: intPtr(0),
	}
	require.NoError(t, p.RecordResult(match, false))

	require.Len(t, store.UpsertMatchCalls, 1)
	require.Len(t, pubsubMock.SendMessageCalls, 2)
	assert.Equal(t, string(pubsub.EventStatsInvalidated), pubsubMock.SendMessageCalls[0].Topic)
	assert.Equal(t, pubsub.StatsInvalidated{DataVersion: 7}, pubsubMock.SendMessageCalls[0].Data)
	assert.Equal(t, string(pubsub.EventNotifyStandings), pubsubMock.SendMessageCalls[1].Topic)
}

func TestRecordResult_FriendlySkipsStandingsEvent(t *testing.T) {
	store := fixtureStore()
	p, _, _, _, _, pubsubMock := newTestProcessor(store)

	match := &club.Match{
		ID: "m9", CompetitionID: "c1", RoundID: "friendlies",
		HomeTeamID: "tA", AwayTeamID: "tX", Friendly: true,
		HomeScore: intPtr(4), AwayScore: intPtr(4),
	}
	require.NoError(t, p.RecordResult(match, false))

	require.Len(t, pubsubMock.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventStatsInvalidated), pubsubMock.SendMessageCalls[0].Topic)
}

func TestRecordResult_DryRun(t *testing.T) {
	store := fixtureStore()
	p, _, _, _, _, pubsubMock := newTestProcessor(store)

	match := &club.Match{ID: "m9", CompetitionID: "c1", RoundID: "r1", HomeTeamID: "tA", AwayTeamID: "tB"}
	require.NoError(t, p.RecordResult(match, true))

	assert.Empty(t, store.UpsertMatchCalls)
	assert.Empty(t, pubsubMock.SendMessageCalls)
}

func TestNotifyStandings_SendsTable(t *testing.T) {
	store := fixtureStore()
	store.GetCompetitionFunc = func(competitionID string) (*club.Competition, error) {
		return &club.Competition{ID: "c1", Name: "Serie 2", Season: "2024/25", Format: club.FormatLeague, TeamIDs: []string{"tA", "tB"}}, nil
	}
	store.GetTeamsFunc = func(teamIDs []string) ([]club.Team, error) {
		return []club.Team{{ID: "tA", Name: "Alpha"}, {ID: "tB", Name: "Bravo"}}, nil
	}
	store.GetMatchesForCompetitionsFunc = func(competitionIDs []string) ([]club.Match, error) {
		return nil, nil
	}
	p, _, _, notifierMock, _, _ := newTestProcessor(store)

	require.NoError(t, p.NotifyStandings("c1", false))
	require.Len(t, notifierMock.SendStandingsCalls, 1)
	assert.Equal(t, "c1", notifierMock.SendStandingsCalls[0].Comp.ID)
	assert.Len(t, notifierMock.SendStandingsCalls[0].Standings, 2)
}

func TestNotifyStandings_CupHasNoTable(t *testing.T) {
	store := fixtureStore()
	store.GetCompetitionFunc = func(competitionID string) (*club.Competition, error) {
		return &club.Competition{ID: "cup", Name: "Cup", Season: "2024/25", Format: club.FormatCup, TeamIDs: []string{"tA"}}, nil
	}
	store.GetTeamsFunc = func(teamIDs []string) ([]club.Team, error) {
		return []club.Team{{ID: "tA", Name: "Alpha"}}, nil
	}
	store.GetMatchesForCompetitionsFunc = func(competitionIDs []string) ([]club.Match, error) {
		return nil, nil
	}
	p, _, _, notifierMock, _, _ := newTestProcessor(store)

	require.NoError(t, p.NotifyStandings("cup", false))
	assert.Empty(t, notifierMock.SendStandingsCalls)
}

func TestLeaderboard_OrdersByGoals(t *testing.T) {
	p, _, _, _, _, _ := newTestProcessor(fixtureStore())

	entries, err := p.Leaderboard("all", "all", "all", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Anna", entries[0].PlayerName)
	assert.Equal(t, 2, entries[0].Stats.Goals)
	assert.Equal(t, "Bo", entries[1].PlayerName)
}

func TestLeaderboard_Limit(t *testing.T) {
	p, _, _, _, _, _ := newTestProcessor(fixtureStore())

	entries, err := p.Leaderboard("all", "all", "all", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Anna", entries[0].PlayerName)
}

func TestPlayerStatsByName(t *testing.T) {
	p, _, _, _, _, _ := newTestProcessor(fixtureStore())

	t.Run("exact match", func(t *testing.T) {
		name, stats, found, err := p.PlayerStatsByName("anna", "all", "all", "all")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Anna", name)
		assert.Equal(t, 2, stats.Goals)
	})

	t.Run("prefix match", func(t *testing.T) {
		name, _, found, err := p.PlayerStatsByName("an", "all", "all", "all")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Anna", name)
	})

	t.Run("not found", func(t *testing.T) {
		_, _, found, err := p.PlayerStatsByName("zlatan", "all", "all", "all")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
