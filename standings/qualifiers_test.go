package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

func qualifierTournament() *models.Tournament {
	settings := *defaultSettings()
	return &models.Tournament{
		ID:       "t1",
		Settings: settings,
		Groups: []models.Group{
			{
				ID:        "g1",
				Name:      "Group A",
				PlayerIDs: []string{"A", "B", "C"},
				Matches: []models.Match{
					completedMatch("A", "B", 3, 0),
					completedMatch("A", "C", 2, 0),
					completedMatch("B", "C", 1, 0),
				},
			},
			{
				ID:        "g2",
				Name:      "Group B",
				PlayerIDs: []string{"X", "Y", "Z"},
				Matches: []models.Match{
					completedMatch("X", "Y", 0, 4),
					completedMatch("X", "Z", 5, 1),
					completedMatch("Y", "Z", 2, 0),
				},
			},
		},
	}
}

func TestSelectQualifiersTopNPerGroup(t *testing.T) {
	tour := qualifierTournament()
	tour.Settings.PlayoffSettings = map[string]models.PlayoffSetting{
		"g1": {NumQualifiers: 2},
		"g2": {NumQualifiers: 1},
	}

	qualifiers := SelectQualifiers(tour)
	require.Len(t, qualifiers, 3)

	assert.Equal(t, models.Qualifier{PlayerID: "A", GroupID: "g1", GroupName: "Group A", Rank: 1}, qualifiers[0])
	assert.Equal(t, models.Qualifier{PlayerID: "B", GroupID: "g1", GroupName: "Group A", Rank: 2}, qualifiers[1])
	assert.Equal(t, models.Qualifier{PlayerID: "Y", GroupID: "g2", GroupName: "Group B", Rank: 1}, qualifiers[2])
}

func TestSelectQualifiersSkipsUnconfiguredGroups(t *testing.T) {
	tour := qualifierTournament()
	tour.Settings.PlayoffSettings = map[string]models.PlayoffSetting{
		"g1": {NumQualifiers: 0},
		// g2 has no setting at all
	}
	assert.Empty(t, SelectQualifiers(tour))
}

func TestSelectQualifiersClampsToGroupSize(t *testing.T) {
	tour := qualifierTournament()
	tour.Settings.PlayoffSettings = map[string]models.PlayoffSetting{
		"g1": {NumQualifiers: 10},
	}
	qualifiers := SelectQualifiers(tour)
	assert.Len(t, qualifiers, 3)
}

func TestSelectConsolationRankRange(t *testing.T) {
	tour := qualifierTournament()
	tour.Settings.ConsolationSettings = map[string]models.ConsolationSetting{
		"g1": {StartRank: 2, EndRank: 3},
		"g2": {StartRank: 0, EndRank: 0}, // unset, contributes nothing
	}

	selected := SelectConsolation(tour)
	require.Len(t, selected, 2)
	assert.Equal(t, "B", selected[0].PlayerID)
	assert.Equal(t, 2, selected[0].Rank)
	assert.Equal(t, "C", selected[1].PlayerID)
	assert.Equal(t, 3, selected[1].Rank)
}

func TestSelectConsolationIgnoresOutOfRangeRanks(t *testing.T) {
	tour := qualifierTournament()
	tour.Settings.ConsolationSettings = map[string]models.ConsolationSetting{
		"g1": {StartRank: 3, EndRank: 8},
	}
	selected := SelectConsolation(tour)
	require.Len(t, selected, 1)
	assert.Equal(t, "C", selected[0].PlayerID)
}
