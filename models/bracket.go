package models

// PlayoffMatch — матч сетки на выбывание. Слоты игроков и счёт
// опциональны: nil слот означает ещё не определившегося участника (или
// bye в первом раунде).
type PlayoffMatch struct {
	ID         string  `json:"id"`
	Round      int     `json:"round"`
	MatchIndex int     `json:"match_index"`
	Player1ID  *string `json:"player1_id,omitempty"`
	Player2ID  *string `json:"player2_id,omitempty"`
	Score1     *int    `json:"score1,omitempty"`
	Score2     *int    `json:"score2,omitempty"`
	WinnerID   *string `json:"winner_id,omitempty"`

	// NextMatchID links to the match the winner advances to. Nil for the
	// final and the bronze final.
	NextMatchID            *string `json:"next_match_id,omitempty"`
	IsBronzeFinal          bool    `json:"is_bronze_final"`
	LoserGoesToBronzeFinal bool    `json:"loser_goes_to_bronze_final"`
}

// IsReady reports whether both slots are filled and no winner is set yet.
func (m *PlayoffMatch) IsReady() bool {
	return m.Player1ID != nil && m.Player2ID != nil && m.WinnerID == nil
}

// PlayoffBracket хранит матчи сетки как арену: связи между матчами — это
// идентификаторы, а не вложенные структуры.
type PlayoffBracket struct {
	Matches       []PlayoffMatch `json:"matches"`
	IsGenerated   bool           `json:"is_generated"`
	FinalID       *string        `json:"final_id,omitempty"`
	BronzeFinalID *string        `json:"bronze_final_id,omitempty"`
}

// Match returns the bracket match with the given id, or nil.
func (b *PlayoffBracket) Match(id string) *PlayoffMatch {
	for i := range b.Matches {
		if b.Matches[i].ID == id {
			return &b.Matches[i]
		}
	}
	return nil
}
