package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/brackets"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// seededTournament has one finished group of four: standings order is
// p1, p2, p3, p4 with the top two entitled to the playoff bracket and
// ranks 3-4 to the consolation bracket.
func seededTournament() *models.Tournament {
	score := func(v int) *int { return &v }
	completed := func(a, b string, sa, sb int) models.Match {
		return models.Match{
			ID: a + b, Player1ID: a, Player2ID: b,
			Score1: score(sa), Score2: score(sb),
			Status: models.MatchStatusCompleted,
		}
	}
	return &models.Tournament{
		ID:      "t1",
		EventID: "e1",
		Groups: []models.Group{{
			ID:        "g1",
			Name:      "Group A",
			PlayerIDs: []string{"p1", "p2", "p3", "p4"},
			Matches: []models.Match{
				completed("p1", "p2", 3, 0),
				completed("p1", "p3", 3, 0),
				completed("p1", "p4", 3, 0),
				completed("p2", "p3", 3, 0),
				completed("p2", "p4", 3, 0),
				completed("p3", "p4", 3, 0),
			},
		}},
		Settings: models.TournamentSettings{
			PointRules:          []models.PointRule{{MinDiff: 1, MaxDiff: 99, WinnerPoints: 3}},
			TieBreakers:         []models.TieBreaker{models.TieBreakerGoalDifference},
			PlayoffSettings:     map[string]models.PlayoffSetting{"g1": {NumQualifiers: 2}},
			ConsolationSettings: map[string]models.ConsolationSetting{"g1": {StartRank: 3, EndRank: 4}},
			HasBronzeFinal:      true,
		},
	}
}

func TestValidateSeedPoolAcceptsExactQualifierSet(t *testing.T) {
	tour := seededTournament()
	assert.NoError(t, validateSeedPool(tour, models.BracketKindPlayoff, []string{"p1", "p2"}))
	assert.NoError(t, validateSeedPool(tour, models.BracketKindConsolation, []string{"p3", "p4"}))
}

func TestValidateSeedPoolAllowsByes(t *testing.T) {
	tour := seededTournament()
	tour.Settings.PlayoffSettings["g1"] = models.PlayoffSetting{NumQualifiers: 3}
	seeds := []string{"p1", brackets.Bye, "p2", "p3"}
	assert.NoError(t, validateSeedPool(tour, models.BracketKindPlayoff, seeds))
}

func TestValidateSeedPoolRejectsOutsider(t *testing.T) {
	tour := seededTournament()
	err := validateSeedPool(tour, models.BracketKindPlayoff, []string{"p1", "p4"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateSeedPoolRejectsDuplicateSeed(t *testing.T) {
	tour := seededTournament()
	err := validateSeedPool(tour, models.BracketKindPlayoff, []string{"p1", "p1"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateSeedPoolRejectsMissingQualifier(t *testing.T) {
	tour := seededTournament()
	err := validateSeedPool(tour, models.BracketKindPlayoff, []string{"p1", brackets.Bye})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestBronzeFinalOnlyForPlayoffBracket(t *testing.T) {
	tour := seededTournament()
	assert.True(t, bronzeFinalFor(tour, models.BracketKindPlayoff))
	assert.False(t, bronzeFinalFor(tour, models.BracketKindConsolation))

	tour.Settings.HasBronzeFinal = false
	assert.False(t, bronzeFinalFor(tour, models.BracketKindPlayoff))
}
