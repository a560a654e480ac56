package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	users := Users()
	require.Len(t, users, 10)

	seen := make(map[string]bool)
	for _, u := range users {
		assert.NotEmpty(t, u.DisplayName)
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Password)
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestGames(t *testing.T) {
	games := Games()
	require.Len(t, games, 20)

	seen := make(map[string]bool)
	for _, g := range games {
		assert.NotEmpty(t, g.GameID)
		assert.NotEmpty(t, g.DisplayName)
		assert.NotEmpty(t, g.Developer)
		assert.Greater(t, g.Price, 0.0)
		assert.NotEmpty(t, g.Tags)
		assert.NotEmpty(t, g.Genres)
		assert.False(t, seen[g.GameID], "duplicate game id %s", g.GameID)
		seen[g.GameID] = true
	}
}

func TestFactoriesAreDeterministic(t *testing.T) {
	assert.Equal(t, Users(), Users())
	assert.Equal(t, Games(), Games())
}

func TestCatalogEntry(t *testing.T) {
	game := Games()[0]
	entry := CatalogEntry(game)

	assert.Equal(t, game.GameID, entry.GameID)
	assert.True(t, entry.Active)
	assert.Equal(t, "https://cdn.ministeam.com/games/the-witcher-3/cover.jpg", entry.Media.CoverImageURL)
	assert.Equal(t, "Windows 10", entry.Specs.Minimum.OS)
	assert.Equal(t, "8 GB RAM", entry.Specs.Minimum.Memory)
}
