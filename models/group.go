package models

import "time"

type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

// Match — матч группового этапа. Счёт опционален до завершения.
type Match struct {
	ID          string      `json:"id"`
	Player1ID   string      `json:"player1_id"`
	Player2ID   string      `json:"player2_id"`
	Score1      *int        `json:"score1,omitempty"`
	Score2      *int        `json:"score2,omitempty"`
	Status      MatchStatus `json:"status"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	Location    *string     `json:"location,omitempty"`
	SlotID      *string     `json:"slot_id,omitempty"`
}

// IsCompleted reports whether the match counts for standings:
// completed status with both scores recorded.
func (m *Match) IsCompleted() bool {
	return m.Status == MatchStatusCompleted && m.Score1 != nil && m.Score2 != nil
}

type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
	Matches   []Match  `json:"matches"`
}

// Match returns the group match with the given id, or nil.
func (g *Group) Match(id string) *Match {
	for i := range g.Matches {
		if g.Matches[i].ID == id {
			return &g.Matches[i]
		}
	}
	return nil
}
