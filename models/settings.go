package models

// TieBreaker задаёт критерий сортировки при равенстве очков.
// Критерии применяются в порядке их следования в настройках.
type TieBreaker string

const (
	TieBreakerHeadToHead     TieBreaker = "headToHead"
	TieBreakerWins           TieBreaker = "wins"
	TieBreakerGoalDifference TieBreaker = "goalDifference"
	TieBreakerGoalsFor       TieBreaker = "goalsFor"
)

// PointRule awards points by absolute score differential.
// Ranges are inclusive on both ends; the first matching rule wins.
// Overlapping ranges are not validated, list order decides.
type PointRule struct {
	MinDiff      int `json:"min_diff"`
	MaxDiff      int `json:"max_diff"`
	WinnerPoints int `json:"winner_points"`
	LoserPoints  int `json:"loser_points"`
}

// PlayoffSetting — сколько игроков группы проходит в плей-офф.
type PlayoffSetting struct {
	NumQualifiers int `json:"num_qualifiers"`
}

// ConsolationSetting selects a 1-indexed inclusive rank range of a group
// for the consolation bracket. Both ranks zero means the group opted out.
type ConsolationSetting struct {
	StartRank int `json:"start_rank"`
	EndRank   int `json:"end_rank"`
}

func (s ConsolationSetting) IsUnset() bool {
	return s.StartRank == 0 && s.EndRank == 0
}

type TournamentSettings struct {
	PointsPerDraw       int                           `json:"points_per_draw"`
	PointRules          []PointRule                   `json:"point_rules"`
	TieBreakers         []TieBreaker                  `json:"tie_breakers"`
	PlayoffSettings     map[string]PlayoffSetting     `json:"playoff_settings,omitempty"`
	ConsolationSettings map[string]ConsolationSetting `json:"consolation_settings,omitempty"`
	HasBronzeFinal      bool                          `json:"has_bronze_final"`
}
