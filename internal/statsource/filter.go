// Package statsource is the pure selection contract between raw club records
// and the aggregation code: it decides which competitions, matches and manual
// override rows fall inside a (season, competition) scope. It never touches
// the database.
package statsource

import (
	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/season"
)

// ScopeAll is the boundary value that disables a filter dimension.
const ScopeAll = "all"

// FilterCompetitions narrows a competition list to a season/competition scope.
// A season scope of "all" matches every season; any other value is compared
// through the season codec so the surface encoding never matters. The
// competition scope is "all" or an exact id.
func FilterCompetitions(all []club.Competition, seasonScope, competitionScope string) []club.Competition {
	out := make([]club.Competition, 0, len(all))
	for _, comp := range all {
		if seasonScope != ScopeAll && !season.Equals(comp.Season, seasonScope) {
			continue
		}
		if competitionScope != ScopeAll && comp.ID != competitionScope {
			continue
		}
		out = append(out, comp)
	}
	return out
}

// FilterMatches keeps the matches belonging to one of the given competitions.
func FilterMatches(matches []club.Match, comps []club.Competition) []club.Match {
	ids := make(map[string]struct{}, len(comps))
	for _, comp := range comps {
		ids[comp.ID] = struct{}{}
	}

	out := make([]club.Match, 0, len(matches))
	for _, m := range matches {
		if _, ok := ids[m.CompetitionID]; ok {
			out = append(out, m)
		}
	}
	return out
}

// ResolveManualOverrides returns the active manual override rows for a player
// in one competition under the given season scope.
//
// For a concrete season the season bucket wins over the legacy flat row. For
// "all" the candidate set is the union of every season bucket plus the legacy
// row; a competition double-entered under two season buckets yields two rows
// on purpose (observed behavior kept pending product clarification; legacy
// rows are data not yet migrated into buckets, so downstream summation treats
// each returned row as its own contribution).
func ResolveManualOverrides(p club.Player, competitionID, seasonScope string) []club.ManualCompetitionStat {
	if seasonScope == ScopeAll {
		var out []club.ManualCompetitionStat
		for _, rows := range p.SeasonStats {
			out = append(out, activeRowsFor(rows, competitionID)...)
		}
		out = append(out, activeRowsFor(p.ManualStats, competitionID)...)
		return out
	}

	for key, rows := range p.SeasonStats {
		if !season.Equals(key, seasonScope) {
			continue
		}
		if active := activeRowsFor(rows, competitionID); len(active) > 0 {
			return active
		}
	}
	return activeRowsFor(p.ManualStats, competitionID)
}

func activeRowsFor(rows []club.ManualCompetitionStat, competitionID string) []club.ManualCompetitionStat {
	var out []club.ManualCompetitionStat
	for _, row := range rows {
		if row.CompetitionID == competitionID && row.Active() {
			out = append(out, row)
		}
	}
	return out
}
