package utils

import "github.com/google/uuid"

// UUIDGenerator produces the unique part of stored certificate file names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate prefers time-ordered v7 ids so file listings sort by creation,
// falling back to v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
