// Package aggregator turns raw match records and manual override rows into
// per-player season totals. It is pure computation over in-memory inputs; the
// caller fetches the records and hands them in.
package aggregator

import (
	"math"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/statsource"
)

// Roster is the allow-list of player ids eligible for computed aggregation.
// A nil Roster places no restriction.
type Roster map[string]struct{}

// NewRoster builds a Roster from a list of player ids.
func NewRoster(playerIDs []string) Roster {
	r := make(Roster, len(playerIDs))
	for _, id := range playerIDs {
		r[id] = struct{}{}
	}
	return r
}

func (r Roster) allows(playerID string) bool {
	if r == nil {
		return true
	}
	_, ok := r[playerID]
	return ok
}

// Aggregate computes per-player totals across every competition matching the
// season/competition scope.
//
// For a given (player, competition) pair the result is either the manual
// override rows or the computed match sums, never a mix: a player with an
// active override for a competition contributes the override there and is
// excluded from that competition's computed path, while still being computed
// normally in competitions without an override. Players with no contribution
// are absent from the result; a missing key reads as all-zero.
func Aggregate(players []club.Player, matches []club.Match, comps []club.Competition, seasonScope, competitionScope string, roster Roster) map[string]club.AggregatedPlayerStats {
	filtered := statsource.FilterCompetitions(comps, seasonScope, competitionScope)
	totals := make(map[string]club.AggregatedPlayerStats)

	// Per-competition set of players whose computed sums must not count.
	overridden := make(map[string]map[string]struct{}, len(filtered))
	for _, comp := range filtered {
		excluded := make(map[string]struct{})
		for _, p := range players {
			rows := statsource.ResolveManualOverrides(p, comp.ID, seasonScope)
			if len(rows) == 0 {
				continue
			}
			excluded[p.ID] = struct{}{}
			agg := totals[p.ID]
			for _, row := range rows {
				addOverride(&agg, row)
			}
			totals[p.ID] = agg
		}
		overridden[comp.ID] = excluded
	}

	for _, m := range statsource.FilterMatches(matches, filtered) {
		if !m.Played() {
			continue
		}
		excluded := overridden[m.CompetitionID]
		for _, line := range m.PlayerLines {
			if line.PlayerID == "" {
				continue
			}
			if !roster.allows(line.PlayerID) {
				continue
			}
			if _, ok := excluded[line.PlayerID]; ok {
				continue
			}
			agg := totals[line.PlayerID]
			if line.MinutesPlayed > 0 {
				agg.Appearances++
			}
			agg.Minutes += line.MinutesPlayed
			agg.Goals += line.Goals
			agg.Assists += line.Assists
			agg.YellowCards += line.YellowCards
			agg.RedCards += line.RedCards
			totals[line.PlayerID] = agg
		}
	}

	return totals
}

func addOverride(agg *club.AggregatedPlayerStats, row club.ManualCompetitionStat) {
	agg.Appearances += coerce(row.Matches)
	agg.Minutes += coerce(row.Minutes)
	agg.Goals += coerce(row.Goals)
	agg.Assists += coerce(row.Assists)
	agg.YellowCards += coerce(row.YellowCards)
	agg.RedCards += coerce(row.RedCards)
}

// coerce treats a missing or non-finite value as 0 so a single bad field can
// never poison a total.
func coerce(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int(*v)
}
