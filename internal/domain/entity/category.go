package entity

import "github.com/google/uuid"

// Category groups products by brand or kind. Categories are seeded out-of-band.
type Category struct {
	ID   uuid.UUID
	Name string
}
