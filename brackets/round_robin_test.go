package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

func TestGenerateRoundRobinMatches(t *testing.T) {
	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B", "C", "D"},
	}
	matches := GenerateRoundRobinMatches(group, &seqIDs{})
	require.Len(t, matches, 6, "one match per unordered pair")

	pairs := make(map[string]bool)
	for _, m := range matches {
		assert.Equal(t, models.MatchStatusPending, m.Status)
		assert.Nil(t, m.Score1)
		assert.NotEmpty(t, m.ID)
		key := m.Player1ID + "/" + m.Player2ID
		if m.Player2ID < m.Player1ID {
			key = m.Player2ID + "/" + m.Player1ID
		}
		assert.False(t, pairs[key], "pair %s generated twice", key)
		pairs[key] = true
	}
	assert.Len(t, pairs, 6)
}

func TestGenerateRoundRobinMatchesCollapsesDuplicates(t *testing.T) {
	group := &models.Group{ID: "g1", PlayerIDs: []string{"A", "B", "A"}}
	matches := GenerateRoundRobinMatches(group, &seqIDs{})
	require.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].Player1ID)
	assert.Equal(t, "B", matches[0].Player2ID)
}

func TestGenerateRoundRobinMatchesSmallGroups(t *testing.T) {
	assert.Empty(t, GenerateRoundRobinMatches(&models.Group{ID: "g", PlayerIDs: []string{"A"}}, &seqIDs{}))
	assert.Empty(t, GenerateRoundRobinMatches(&models.Group{ID: "g"}, &seqIDs{}))
}
