package roster_test

import (
	"testing"

	"github.com/okrbeck/clubtable/internal/database"
	"github.com/okrbeck/clubtable/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRoster(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	require.NoError(t, roster.AddMembers(db, "tA", "2024/25", []string{"p1", "p2"}))
	require.NoError(t, roster.AddMembers(db, "tA", "2023/24", []string{"p2", "p3"}))
	require.NoError(t, roster.AddMembers(db, "tB", "2024/25", []string{"p9"}))

	provider := roster.NewStore(db)

	t.Run("specific season", func(t *testing.T) {
		ids, err := provider.TeamRoster("tA", "2024/25")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
	})

	t.Run("season matched across encodings", func(t *testing.T) {
		ids, err := provider.TeamRoster("tA", "2024-25")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"p1", "p2"}, ids)

		ids, err = provider.TeamRoster("tA", "2023-2024")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"p2", "p3"}, ids)
	})

	t.Run("all seasons de-duplicates", func(t *testing.T) {
		ids, err := provider.TeamRoster("tA", "all")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids)
	})

	t.Run("unknown team is empty", func(t *testing.T) {
		ids, err := provider.TeamRoster("tX", "all")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("duplicate add is ignored", func(t *testing.T) {
		require.NoError(t, roster.AddMembers(db, "tA", "2024/25", []string{"p1"}))
		ids, err := provider.TeamRoster("tA", "2024/25")
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})
}
