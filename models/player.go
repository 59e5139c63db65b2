package models

import "time"

// PlayerStatus представляет статус подтверждения участия игрока.
type PlayerStatus string

const (
	PlayerStatusPending   PlayerStatus = "pending"
	PlayerStatusConfirmed PlayerStatus = "confirmed"
)

type Player struct {
	ID        string       `json:"id" db:"id"`
	EventID   string       `json:"event_id" db:"event_id"`
	Name      string       `json:"name" db:"name"`
	Contact   *string      `json:"contact,omitempty" db:"contact"`
	Status    PlayerStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	AvatarKey *string      `json:"-" db:"avatar_key"`
	AvatarURL *string      `json:"avatar_url,omitempty" db:"-"`
}
