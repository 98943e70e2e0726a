package processor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/okrbeck/clubtable/internal/aggregator"
	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/notifier"
	"github.com/okrbeck/clubtable/internal/pubsub"
	"github.com/okrbeck/clubtable/internal/reconciler"
	"github.com/okrbeck/clubtable/internal/roster"
	"github.com/okrbeck/clubtable/internal/standings"
	"github.com/okrbeck/clubtable/internal/statcache"
)

// ScopeAll selects every team, season or competition depending on position.
const ScopeAll = "all"

// New creates a new Processor.
func New(store Store, rosterProvider roster.Provider, cache *statcache.Cache, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		roster:   rosterProvider,
		cache:    cache,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// PlayerStats returns aggregated per-player stats for the given scopes,
// memoized per data version. A player absent from the result has all-zero
// stats for the scope.
func (p *Processor) PlayerStats(teamScope, seasonScope, competitionScope string) (map[string]club.AggregatedPlayerStats, error) {
	version, err := p.store.DataVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to read data version: %w", err)
	}

	players, err := p.store.GetPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	comps, err := p.store.GetCompetitions()
	if err != nil {
		return nil, fmt.Errorf("failed to load competitions: %w", err)
	}
	matches, err := p.store.GetAllMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	var allowed aggregator.Roster
	if teamScope != "" && teamScope != ScopeAll {
		ids, err := p.roster.TeamRoster(teamScope, seasonScope)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster for team %s: %w", teamScope, err)
		}
		allowed = aggregator.NewRoster(ids)
	}

	key := statcache.Key{
		DataVersion:      version,
		TeamScope:        teamScope,
		SeasonScope:      seasonScope,
		CompetitionScope: competitionScope,
	}

	stats := p.cache.GetOrCompute(key, func() map[string]club.AggregatedPlayerStats {
		startTime := time.Now()
		result := aggregator.Aggregate(players, matches, comps, seasonScope, competitionScope, allowed)
		p.metrics.IncAggregationsComputed()
		p.metrics.ObserveAggregationDuration(float64(time.Since(startTime).Milliseconds()))
		log.Debug("Computed aggregation", "team", teamScope, "season", seasonScope, "competition", competitionScope, "dataVersion", version, "players", len(result))
		return result
	})

	return stats, nil
}

// Standings computes the league table for a competition. A non-empty manual
// table stored for the competition replaces the computed one entirely.
func (p *Processor) Standings(competitionID string) (*club.Competition, []club.Standing, error) {
	comp, err := p.store.GetCompetition(competitionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load competition %s: %w", competitionID, err)
	}

	manual, err := p.store.GetManualStandings(competitionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load manual standings: %w", err)
	}
	teams, err := p.store.GetTeams(comp.TeamIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}
	matches, err := p.store.GetMatchesForCompetitions([]string{competitionID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load matches: %w", err)
	}

	table := standings.Compute(comp, teams, matches, manual)
	p.metrics.IncStandingsComputed()
	return comp, table, nil
}

// TeamMatches returns the merged match list for a team: denormalized index
// rows overlaid with the competition tree, tree winning field by field unless
// its value is empty.
func (p *Processor) TeamMatches(teamID string) ([]club.Match, error) {
	indexRows, err := p.store.GetIndexMatchesByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load index matches: %w", err)
	}
	treeRows, err := p.store.GetMatchesByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree matches: %w", err)
	}
	return reconciler.Merge(indexRows, treeRows), nil
}

// RecordResult stores a match and publishes the invalidation and notification
// events downstream workers react to.
func (p *Processor) RecordResult(match *club.Match, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would record match result", "matchID", match.ID, "competitionID", match.CompetitionID)
		return nil
	}

	if err := p.store.UpsertMatch(match); err != nil {
		return fmt.Errorf("failed to store match: %w", err)
	}

	version, err := p.store.DataVersion()
	if err != nil {
		log.Error("Failed to read data version after match upsert", "error", err, "matchID", match.ID)
	} else if err := p.pubsub.SendMessage(string(pubsub.EventStatsInvalidated), pubsub.StatsInvalidated{DataVersion: version}); err != nil {
		log.Error("Failed to publish stats invalidation", "error", err, "matchID", match.ID)
	}

	if match.Played() && !match.Friendly {
		if err := p.pubsub.SendMessage(string(pubsub.EventNotifyStandings), pubsub.NotifyStandings{CompetitionID: match.CompetitionID}); err != nil {
			log.Error("Failed to publish standings notification", "error", err, "competitionID", match.CompetitionID)
		}
	}

	log.Info("Recorded match result", "matchID", match.ID, "competitionID", match.CompetitionID)
	return nil
}

// NotifyStandings computes the table for a competition and posts it.
func (p *Processor) NotifyStandings(competitionID string, dryRun bool) error {
	comp, table, err := p.Standings(competitionID)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		log.Info("No table to notify for competition", "competitionID", competitionID, "format", comp.Format)
		return nil
	}
	return p.notifier.SendStandings(comp, table, dryRun)
}

// Leaderboard orders the aggregated stats for a scope by goals, then assists,
// then name, resolving player names from the store. A non-positive limit
// returns the full list.
func (p *Processor) Leaderboard(teamScope, seasonScope, competitionScope string, limit int) ([]notifier.LeaderboardEntry, error) {
	stats, err := p.PlayerStats(teamScope, seasonScope, competitionScope)
	if err != nil {
		return nil, err
	}

	players, err := p.store.GetPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	names := make(map[string]string, len(players))
	for _, pl := range players {
		names[pl.ID] = pl.Name
	}

	entries := make([]notifier.LeaderboardEntry, 0, len(stats))
	for playerID, s := range stats {
		name := names[playerID]
		if name == "" {
			name = playerID
		}
		entries = append(entries, notifier.LeaderboardEntry{PlayerName: name, Stats: s})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Stats.Goals != b.Stats.Goals {
			return a.Stats.Goals > b.Stats.Goals
		}
		if a.Stats.Assists != b.Stats.Assists {
			return a.Stats.Assists > b.Stats.Assists
		}
		return a.PlayerName < b.PlayerName
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// PlayerStatsByName resolves a player by case-insensitive name prefix and
// returns their aggregated stats for the scope. The bool reports whether a
// player matched.
func (p *Processor) PlayerStatsByName(query, teamScope, seasonScope, competitionScope string) (string, club.AggregatedPlayerStats, bool, error) {
	players, err := p.store.GetPlayers()
	if err != nil {
		return "", club.AggregatedPlayerStats{}, false, fmt.Errorf("failed to load players: %w", err)
	}

	match, ok := findPlayer(players, query)
	if !ok {
		return "", club.AggregatedPlayerStats{}, false, nil
	}

	stats, err := p.PlayerStats(teamScope, seasonScope, competitionScope)
	if err != nil {
		return "", club.AggregatedPlayerStats{}, false, err
	}
	return match.Name, stats[match.ID], true, nil
}

// findPlayer prefers an exact case-insensitive name match over a prefix match.
func findPlayer(players []club.Player, query string) (club.Player, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return club.Player{}, false
	}
	for _, pl := range players {
		if strings.ToLower(pl.Name) == q {
			return pl, true
		}
	}
	for _, pl := range players {
		if strings.HasPrefix(strings.ToLower(pl.Name), q) {
			return pl, true
		}
	}
	return club.Player{}, false
}
