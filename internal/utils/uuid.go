package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace IDs. Time-ordered v7 IDs are
// preferred so log lines sort by arrival; a random v4 is used if the clock
// source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
