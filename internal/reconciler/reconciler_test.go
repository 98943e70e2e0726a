package reconciler_test

import (
	"testing"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v int) *int { return &v }

func TestMergeFieldPrecedence(t *testing.T) {
	indexRows := []club.Match{{
		ID: "m1", CompetitionID: "c1", RoundID: "r1",
		Time: "10:00", Venue: "Home ground",
	}}
	treeRows := []club.Match{{
		ID: "m1", CompetitionID: "c1", RoundID: "r1",
		HomeScore: score(2),
	}}

	got := reconciler.Merge(indexRows, treeRows)
	require.Len(t, got, 1)

	m := got[0]
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "10:00", m.Time, "index fills the gap the tree left empty")
	assert.Equal(t, "Home ground", m.Venue)
	require.NotNil(t, m.HomeScore)
	assert.Equal(t, 2, *m.HomeScore, "tree wins when present")
}

func TestMergeTreeValueWins(t *testing.T) {
	indexRows := []club.Match{{
		ID: "m1", CompetitionID: "c1", RoundID: "r1",
		Venue: "stale venue", HomeScore: score(1),
	}}
	treeRows := []club.Match{{
		ID: "m1", CompetitionID: "c1", RoundID: "r1",
		Venue: "fresh venue", HomeScore: score(3),
		PlayerLines: []club.PlayerStatLine{{PlayerID: "p1", Goals: 1}},
	}}

	got := reconciler.Merge(indexRows, treeRows)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh venue", got[0].Venue)
	assert.Equal(t, 3, *got[0].HomeScore)
	assert.Len(t, got[0].PlayerLines, 1)
}

func TestMergeKeepsBothSidesRows(t *testing.T) {
	indexRows := []club.Match{
		{ID: "legacy", CompetitionID: "friendlies", RoundID: "r0", Date: "2019-05-01"},
	}
	treeRows := []club.Match{
		{ID: "m2", CompetitionID: "c1", RoundID: "r1", Date: "2024-09-01"},
	}

	got := reconciler.Merge(indexRows, treeRows)
	require.Len(t, got, 2, "index-only and tree-only rows both survive")
}

func TestMergeKeysIncludeCompetitionAndRound(t *testing.T) {
	// The same match id in two different rounds is two different matches.
	indexRows := []club.Match{{ID: "m1", CompetitionID: "c1", RoundID: "r1"}}
	treeRows := []club.Match{{ID: "m1", CompetitionID: "c1", RoundID: "r2"}}

	got := reconciler.Merge(indexRows, treeRows)
	assert.Len(t, got, 2)
}

func TestMergeSortsByDate(t *testing.T) {
	indexRows := []club.Match{
		{ID: "m3", CompetitionID: "c1", RoundID: "r1", Date: "2024-11-02"},
		{ID: "m1", CompetitionID: "c1", RoundID: "r1", Date: "2024-08-15"},
	}
	treeRows := []club.Match{
		{ID: "m2", CompetitionID: "c1", RoundID: "r1", Date: "2024-09-30"},
	}

	got := reconciler.Merge(indexRows, treeRows)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}
