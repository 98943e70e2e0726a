// Package reconciler merges the two read paths for match listings: the
// denormalized per-team index (fast, possibly stale or incomplete) and the
// authoritative match tree scan (slow, complete for everything it reaches).
// Presenting the union with tree-wins-when-present gives the best available
// data without dropping index-only rows the tree scan never sees, such as
// legacy friendlies stored outside the main tree.
package reconciler

import (
	"sort"

	"github.com/okrbeck/clubtable/internal/club"
)

type key struct {
	competitionID string
	roundID       string
	matchID       string
}

// Merge combines index-sourced and tree-sourced match rows, keyed by
// (competitionID, roundID, matchID). For every optional field the tree value
// wins unless it is empty, in which case the index value fills the gap.
// Identity fields are never dropped. The result is sorted ascending by date;
// dates are zero-padded ISO strings, so plain string ordering is correct.
func Merge(indexRows, treeRows []club.Match) []club.Match {
	merged := make(map[key]club.Match, len(indexRows)+len(treeRows))
	var order []key

	for _, m := range indexRows {
		k := keyOf(m)
		if _, ok := merged[k]; !ok {
			order = append(order, k)
		}
		merged[k] = m
	}

	for _, tree := range treeRows {
		k := keyOf(tree)
		index, ok := merged[k]
		if !ok {
			merged[k] = tree
			order = append(order, k)
			continue
		}
		merged[k] = overlay(index, tree)
	}

	out := make([]club.Match, 0, len(order))
	for _, k := range order {
		out = append(out, merged[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func keyOf(m club.Match) key {
	return key{competitionID: m.CompetitionID, roundID: m.RoundID, matchID: m.ID}
}

// overlay applies the authoritative tree row on top of the index row,
// field by field.
func overlay(index, tree club.Match) club.Match {
	out := index

	out.HomeTeamID = pickString(tree.HomeTeamID, index.HomeTeamID)
	out.AwayTeamID = pickString(tree.AwayTeamID, index.AwayTeamID)
	out.Date = pickString(tree.Date, index.Date)
	out.Time = pickString(tree.Time, index.Time)
	out.Venue = pickString(tree.Venue, index.Venue)

	if tree.HomeScore != nil {
		out.HomeScore = tree.HomeScore
	}
	if tree.AwayScore != nil {
		out.AwayScore = tree.AwayScore
	}
	if len(tree.PlayerLines) > 0 {
		out.PlayerLines = tree.PlayerLines
	}
	if len(tree.TeamLines) > 0 {
		out.TeamLines = tree.TeamLines
	}
	if len(tree.Events) > 0 {
		out.Events = tree.Events
	}
	// The index never knows better than the tree whether a match is a
	// friendly once the tree has the row at all.
	out.Friendly = tree.Friendly || index.Friendly

	return out
}

func pickString(tree, index string) string {
	if tree != "" {
		return tree
	}
	return index
}
