package models

import "github.com/google/uuid"

// IDGenerator выдаёт идентификаторы для новых сущностей. Внедряется в
// генерацию матчей и сеток, чтобы конструкция была детерминируемой в
// тестах.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
