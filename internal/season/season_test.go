package season_test

import (
	"testing"

	"github.com/okrbeck/clubtable/internal/season"
	"github.com/stretchr/testify/assert"
)

func TestToSlash(t *testing.T) {
	assert.Equal(t, "2024/25", season.ToSlash("2024-25"))
	assert.Equal(t, "2024/25", season.ToSlash("2024/25"))
	assert.Equal(t, "1999/00", season.ToSlash("1999-2000"))
	assert.Equal(t, "1999/00", season.ToSlash("1999/2000"))

	t.Run("unrecognized formats pass through", func(t *testing.T) {
		assert.Equal(t, "Winter Cup", season.ToSlash("Winter Cup"))
		assert.Equal(t, "", season.ToSlash(""))
		assert.Equal(t, "24/25", season.ToSlash("24/25"))
	})
}

func TestToDash(t *testing.T) {
	assert.Equal(t, "2024-25", season.ToDash("2024/25"))
	assert.Equal(t, "2024-25", season.ToDash("2024-25"))
	assert.Equal(t, "1999-00", season.ToDash("1999/2000"))
	assert.Equal(t, "whatever", season.ToDash("whatever"))
}

func TestEquals(t *testing.T) {
	assert.True(t, season.Equals("2024/25", "2024-25"))
	assert.True(t, season.Equals("2024-25", "2024/25"))
	assert.True(t, season.Equals("1999-2000", "1999/00"))
	assert.True(t, season.Equals("free form", "free form"))

	assert.False(t, season.Equals("2024/25", "2023/24"))
	assert.False(t, season.Equals("2024/25", "free form"))
}

// Equivalence has to hold for every encoding of the same season.
func TestEqualsFormatAgnostic(t *testing.T) {
	for _, s := range []string{"2024/25", "2024-25", "1999-2000", "2010/11"} {
		assert.True(t, season.Equals(s, season.ToSlash(s)), "slash form of %q", s)
		assert.True(t, season.Equals(s, season.ToDash(s)), "dash form of %q", s)
		assert.True(t, season.Equals(s, s), "reflexivity of %q", s)
	}
}

func TestPrevious(t *testing.T) {
	assert.Equal(t, "2023/24", season.Previous("2024/25"))
	assert.Equal(t, "2023-24", season.Previous("2024-25"))
	assert.Equal(t, "1998-99", season.Previous("1999-2000"))
	assert.Equal(t, "1999/00", season.Previous("2000/01"))

	t.Run("unknown input yields empty string", func(t *testing.T) {
		assert.Equal(t, "", season.Previous("all"))
		assert.Equal(t, "", season.Previous(""))
		assert.Equal(t, "", season.Previous("Winter Cup"))
	})
}
