package models

// StandingsEntry — строка таблицы группы. Всегда вычисляется заново из
// матчей группы, никогда не хранится как источник истины.
type StandingsEntry struct {
	PlayerID       string `json:"player_id"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

// Qualifier is a player advancing out of a group, tagged with the group
// they came from and their 1-indexed in-group rank.
type Qualifier struct {
	PlayerID  string `json:"player_id"`
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Rank      int    `json:"rank"`
}
