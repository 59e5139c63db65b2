package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed   = errors.New("validation failed")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrEventNameRequired  = errors.New("event name is required")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrGroupNameRequired  = errors.New("group name is required")
	ErrScoresInvalid      = errors.New("match scores must be non-negative integers")
	ErrMatchNotPending    = errors.New("match is no longer pending")
	ErrMatchNotInGroup    = errors.New("match does not belong to the group")

	// Ошибки конфликтов
	ErrUserEmailConflict       = errors.New("email address is already in use")
	ErrSlotAlreadyBooked       = errors.New("time slot is already booked by another match")
	ErrMatchHasSlot            = errors.New("match already holds a time slot")
	ErrGroupMatchesExist       = errors.New("group already has generated matches")
	ErrBracketAlreadyGenerated = errors.New("bracket has already been generated")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrSlotNotFound       = errors.New("time slot not found")
)
