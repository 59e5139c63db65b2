package models

import "time"

// BracketKind различает основную сетку плей-офф и утешительную.
type BracketKind string

const (
	BracketKindPlayoff     BracketKind = "playoff"
	BracketKindConsolation BracketKind = "consolation"
)

// Tournament — турнир внутри события: групповой этап плюс опциональные
// сетки на выбывание. Groups, Settings и сетки хранятся в БД как JSONB
// и обновляются узкими операциями репозитория, никогда целиком.
type Tournament struct {
	ID          string             `json:"id" db:"id"`
	EventID     string             `json:"event_id" db:"event_id"`
	Name        string             `json:"name" db:"name"`
	Groups      []Group            `json:"groups" db:"-"`
	Settings    TournamentSettings `json:"settings" db:"-"`
	Playoff     *PlayoffBracket    `json:"playoff,omitempty" db:"-"`
	Consolation *PlayoffBracket    `json:"consolation,omitempty" db:"-"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
}

// Group returns the group with the given id, or nil.
func (t *Tournament) Group(id string) *Group {
	for i := range t.Groups {
		if t.Groups[i].ID == id {
			return &t.Groups[i]
		}
	}
	return nil
}

// Bracket returns the bracket of the given kind, which may be nil.
func (t *Tournament) Bracket(kind BracketKind) *PlayoffBracket {
	if kind == BracketKindConsolation {
		return t.Consolation
	}
	return t.Playoff
}
