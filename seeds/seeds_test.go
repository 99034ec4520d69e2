package seeds_test

import (
	"marquee/seeds"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenres(t *testing.T) {
	genres, err := seeds.Genres()
	require.NoError(t, err)

	assert.Len(t, genres, 19)
	assert.Equal(t, "Alternative", genres[0])
	assert.Contains(t, genres, "R&B")
}

func TestCategories(t *testing.T) {
	categories, err := seeds.Categories()
	require.NoError(t, err)

	assert.Equal(t, []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}, categories)
}
