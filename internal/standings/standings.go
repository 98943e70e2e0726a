// Package standings computes league tables from scored matches. Like the
// aggregator it is pure: the caller loads the competition, teams, matches and
// any manually maintained table and hands them in.
package standings

import (
	"regexp"
	"sort"

	"github.com/okrbeck/clubtable/internal/club"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// In league_cup competitions only rounds named like regular matchdays count
// towards the table; everything else is a cup round.
var matchdayRound = regexp.MustCompile(`(?i)^matchday\s*\d+$`)

// Compute builds the league table for a competition.
//
// A non-empty manual table is a full override: it is returned as-is, sorted
// by its own rank field, and no match is consulted. Pure cup competitions
// have no computed table, so without a manual one the result is empty.
// Otherwise every team listed on the competition gets a zeroed row and each
// match with both scores present is folded in. The sort order is points desc, goal difference desc,
// goals for desc, then collated team name asc; ranks are dense and 1-based,
// so no two teams ever share one.
func Compute(comp *club.Competition, teams []club.Team, matches []club.Match, manual []club.Standing) []club.Standing {
	if len(manual) > 0 {
		out := make([]club.Standing, len(manual))
		copy(out, manual)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
		return out
	}

	if comp.Format == club.FormatCup {
		return nil
	}

	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	rows := make(map[string]*club.Standing, len(comp.TeamIDs))
	order := make([]string, 0, len(comp.TeamIDs))
	for _, teamID := range comp.TeamIDs {
		if _, ok := rows[teamID]; ok {
			continue
		}
		rows[teamID] = &club.Standing{TeamID: teamID, TeamName: names[teamID]}
		order = append(order, teamID)
	}

	countedRounds := standingsRounds(comp)
	for _, m := range matches {
		if m.CompetitionID != comp.ID {
			continue
		}
		if countedRounds != nil {
			if _, ok := countedRounds[m.RoundID]; !ok {
				continue
			}
		}
		if !m.Played() {
			continue
		}
		home, away := rows[m.HomeTeamID], rows[m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		applyResult(home, away, *m.HomeScore, *m.AwayScore)
	}

	table := make([]club.Standing, 0, len(order))
	for _, teamID := range order {
		row := rows[teamID]
		row.Points = row.Wins*3 + row.Draws
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		table = append(table, *row)
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return coll.CompareString(a.TeamName, b.TeamName) < 0
	})
	for i := range table {
		table[i].Rank = i + 1
	}
	return table
}

// standingsRounds returns the set of round ids counting towards the table,
// or nil when every round counts.
func standingsRounds(comp *club.Competition) map[string]struct{} {
	if comp.Format != club.FormatLeagueCup {
		return nil
	}
	ids := make(map[string]struct{})
	for _, r := range comp.Rounds {
		if matchdayRound.MatchString(r.Name) {
			ids[r.ID] = struct{}{}
		}
	}
	return ids
}

func applyResult(home, away *club.Standing, homeScore, awayScore int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Wins++
		away.Losses++
	case homeScore < awayScore:
		home.Losses++
		away.Wins++
	default:
		home.Draws++
		away.Draws++
	}
}

// LabelForRank returns the color of the first rank-label rule covering the
// given rank, or "" when none applies.
func LabelForRank(labels []club.RankLabel, rank int) string {
	for _, l := range labels {
		if l.From <= rank && rank <= l.To {
			return l.Color
		}
	}
	return ""
}
