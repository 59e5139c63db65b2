package models

import "time"

// Event — событие организатора: владеет игроками, турнирами и
// тайм-слотами. Всё связано по идентификаторам, без вложения.
type Event struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	OrganizerID string    `json:"organizer_id" db:"organizer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Players     []Player     `json:"players,omitempty" db:"-"`
	Tournaments []Tournament `json:"tournaments,omitempty" db:"-"`
	Slots       []TimeSlot   `json:"slots,omitempty" db:"-"`
}
