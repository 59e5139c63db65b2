package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

func intPtr(v int) *int { return &v }

func completedMatch(p1, p2 string, s1, s2 int) models.Match {
	return models.Match{
		ID:        p1 + "-" + p2,
		Player1ID: p1,
		Player2ID: p2,
		Score1:    intPtr(s1),
		Score2:    intPtr(s2),
		Status:    models.MatchStatusCompleted,
	}
}

func defaultSettings() *models.TournamentSettings {
	return &models.TournamentSettings{
		PointsPerDraw: 1,
		PointRules: []models.PointRule{
			{MinDiff: 1, MaxDiff: 2, WinnerPoints: 2, LoserPoints: 1},
			{MinDiff: 3, MaxDiff: 99, WinnerPoints: 3, LoserPoints: 0},
		},
		TieBreakers: []models.TieBreaker{models.TieBreakerWins, models.TieBreakerGoalDifference},
	}
}

func TestCalculateFullGroupScenario(t *testing.T) {
	group := &models.Group{
		ID:        "g1",
		Name:      "Group 1",
		PlayerIDs: []string{"A", "B", "C", "D"},
		Matches: []models.Match{
			completedMatch("A", "B", 6, 2),
			completedMatch("C", "D", 7, 5),
			completedMatch("A", "C", 3, 6),
			completedMatch("B", "D", 6, 1),
			completedMatch("A", "D", 6, 4),
			completedMatch("B", "C", 6, 6),
		},
	}

	table := Calculate(group, defaultSettings())
	require.Len(t, table, 4)

	// A beats B by 4 (3/0), C beats D by 2 (2/1), C beats A by 3 (3/0),
	// B beats D by 5 (3/0), A beats D by 2 (2/1), B-C drawn (1 each).
	byID := make(map[string]models.StandingsEntry, len(table))
	for _, e := range table {
		byID[e.PlayerID] = e
	}
	assert.Equal(t, 5, byID["A"].Points)
	assert.Equal(t, 4, byID["B"].Points)
	assert.Equal(t, 6, byID["C"].Points)
	assert.Equal(t, 2, byID["D"].Points)

	assert.Equal(t, "C", table[0].PlayerID)
	assert.Equal(t, "A", table[1].PlayerID)
	assert.Equal(t, "B", table[2].PlayerID)
	assert.Equal(t, "D", table[3].PlayerID)

	for _, e := range table {
		assert.Equal(t, 3, e.Played, e.PlayerID)
		assert.Equal(t, e.GoalsFor-e.GoalsAgainst, e.GoalDifference, e.PlayerID)
	}
	assert.Equal(t, 2, byID["A"].Wins)
	assert.Equal(t, 1, byID["B"].Draws)
	assert.Equal(t, 3, byID["D"].Losses)
	assert.Equal(t, 19, byID["C"].GoalsFor)
	assert.Equal(t, -9, byID["D"].GoalDifference)
}

func TestCalculateOneEntryPerDistinctPlayer(t *testing.T) {
	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B", "A", "C"},
	}
	table := Calculate(group, defaultSettings())
	assert.Len(t, table, 3, "duplicate membership collapses to one entry")

	empty := &models.Group{ID: "g2", PlayerIDs: []string{"X", "Y"}}
	table = Calculate(empty, defaultSettings())
	require.Len(t, table, 2)
	for _, e := range table {
		assert.Zero(t, e.Played)
		assert.Zero(t, e.Points)
	}
}

func TestCalculateIgnoresIncompleteAndStaleMatches(t *testing.T) {
	pending := models.Match{ID: "m1", Player1ID: "A", Player2ID: "B", Status: models.MatchStatusScheduled}
	// Completed status without both scores does not count either.
	scoreless := models.Match{ID: "m2", Player1ID: "A", Player2ID: "B", Status: models.MatchStatusCompleted, Score1: intPtr(3)}
	// A match against a player who left the group is skipped silently.
	stale := completedMatch("A", "GONE", 5, 0)

	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B"},
		Matches:   []models.Match{pending, scoreless, stale},
	}
	table := Calculate(group, defaultSettings())
	require.Len(t, table, 2)
	for _, e := range table {
		assert.Zero(t, e.Played, e.PlayerID)
	}
}

func TestCalculateNoMatchingPointRuleAwardsNothing(t *testing.T) {
	settings := &models.TournamentSettings{
		PointsPerDraw: 1,
		PointRules:    []models.PointRule{{MinDiff: 1, MaxDiff: 2, WinnerPoints: 2, LoserPoints: 1}},
	}
	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B"},
		Matches:   []models.Match{completedMatch("A", "B", 7, 0)},
	}

	table := Calculate(group, settings)
	byID := map[string]models.StandingsEntry{table[0].PlayerID: table[0], table[1].PlayerID: table[1]}

	// Differential 7 matches no rule: the win is counted, points are not.
	assert.Equal(t, 1, byID["A"].Wins)
	assert.Equal(t, 1, byID["B"].Losses)
	assert.Zero(t, byID["A"].Points)
	assert.Zero(t, byID["B"].Points)
}

func TestCalculateFirstMatchingRuleWinsInListOrder(t *testing.T) {
	settings := &models.TournamentSettings{
		PointRules: []models.PointRule{
			{MinDiff: 1, MaxDiff: 10, WinnerPoints: 2, LoserPoints: 1},
			{MinDiff: 3, MaxDiff: 99, WinnerPoints: 5, LoserPoints: 0},
		},
	}
	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B"},
		Matches:   []models.Match{completedMatch("A", "B", 5, 0)},
	}

	table := Calculate(group, settings)
	byID := map[string]models.StandingsEntry{table[0].PlayerID: table[0], table[1].PlayerID: table[1]}

	// Diff 5 matches both rules; the first in list order applies even
	// though the second is more specific.
	assert.Equal(t, 2, byID["A"].Points)
	assert.Equal(t, 1, byID["B"].Points)
}

func TestCalculateDrawPoints(t *testing.T) {
	settings := defaultSettings()
	settings.PointsPerDraw = 2
	group := &models.Group{
		ID:        "g1",
		PlayerIDs: []string{"A", "B"},
		Matches:   []models.Match{completedMatch("A", "B", 4, 4)},
	}

	table := Calculate(group, settings)
	for _, e := range table {
		assert.Equal(t, 1, e.Draws)
		assert.Equal(t, 2, e.Points)
		assert.Zero(t, e.Wins)
		assert.Zero(t, e.Losses)
	}
}

func TestResolvePoints(t *testing.T) {
	rules := []models.PointRule{
		{MinDiff: 1, MaxDiff: 2, WinnerPoints: 2, LoserPoints: 1},
		{MinDiff: 3, MaxDiff: 99, WinnerPoints: 3, LoserPoints: 0},
	}

	wp, lp, ok := resolvePoints(1, rules)
	require.True(t, ok)
	assert.Equal(t, 2, wp)
	assert.Equal(t, 1, lp)

	wp, lp, ok = resolvePoints(3, rules)
	require.True(t, ok)
	assert.Equal(t, 3, wp)
	assert.Equal(t, 0, lp)

	_, _, ok = resolvePoints(100, rules)
	assert.False(t, ok)

	_, _, ok = resolvePoints(1, nil)
	assert.False(t, ok)
}
