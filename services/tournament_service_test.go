package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

func TestValidateSettings(t *testing.T) {
	valid := models.TournamentSettings{
		PointsPerDraw: 1,
		PointRules: []models.PointRule{
			{MinDiff: 1, MaxDiff: 2, WinnerPoints: 2, LoserPoints: 1},
			{MinDiff: 3, MaxDiff: 99, WinnerPoints: 3, LoserPoints: 0},
		},
		PlayoffSettings:     map[string]models.PlayoffSetting{"g1": {NumQualifiers: 2}},
		ConsolationSettings: map[string]models.ConsolationSetting{"g1": {StartRank: 3, EndRank: 4}},
	}
	assert.NoError(t, validateSettings(valid))

	tests := []struct {
		name   string
		mutate func(*models.TournamentSettings)
	}{
		{"negative draw points", func(s *models.TournamentSettings) { s.PointsPerDraw = -1 }},
		{"inverted rule range", func(s *models.TournamentSettings) {
			s.PointRules = []models.PointRule{{MinDiff: 5, MaxDiff: 2}}
		}},
		{"negative rule min", func(s *models.TournamentSettings) {
			s.PointRules = []models.PointRule{{MinDiff: -1, MaxDiff: 2}}
		}},
		{"negative qualifier count", func(s *models.TournamentSettings) {
			s.PlayoffSettings = map[string]models.PlayoffSetting{"g1": {NumQualifiers: -1}}
		}},
		{"inverted consolation range", func(s *models.TournamentSettings) {
			s.ConsolationSettings = map[string]models.ConsolationSetting{"g1": {StartRank: 4, EndRank: 2}}
		}},
		{"zero start with nonzero end", func(s *models.TournamentSettings) {
			s.ConsolationSettings = map[string]models.ConsolationSetting{"g1": {StartRank: 0, EndRank: 3}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, validateSettings(s), ErrValidationFailed)
		})
	}
}

func TestValidateSettingsUnsetConsolationAllowed(t *testing.T) {
	s := models.TournamentSettings{
		ConsolationSettings: map[string]models.ConsolationSetting{"g1": {}},
	}
	assert.NoError(t, validateSettings(s))
}

func TestDedupIDsKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupIDs([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, dedupIDs(nil))
}

func TestDefaultTournamentSettings(t *testing.T) {
	s := defaultTournamentSettings()
	assert.Equal(t, 1, s.PointsPerDraw)
	assert.NotEmpty(t, s.PointRules)
	assert.Equal(t, models.TieBreakerHeadToHead, s.TieBreakers[0])
	assert.NoError(t, validateSettings(s))
}
