package id

import "github.com/google/uuid"

// UUIDGenerator produces random UUID strings for invoice and user ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) NewID() string {
	return uuid.NewString()
}
