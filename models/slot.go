package models

import "time"

// TimeSlot — бронируемое игровое время. MatchID заполняется атомарно при
// бронировании: не более одного матча на слот.
type TimeSlot struct {
	ID        string    `json:"id" db:"id"`
	EventID   string    `json:"event_id" db:"event_id"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	Location  *string   `json:"location,omitempty" db:"location"`
	MatchID   *string   `json:"match_id,omitempty" db:"match_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsBooked reports whether a match already holds this slot.
func (s *TimeSlot) IsBooked() bool {
	return s.MatchID != nil
}
