package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered (version 7) identifiers for new
// records, falling back to a random version 4 identifier if the clock
// source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
