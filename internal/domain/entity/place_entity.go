package entity

import "time"

// Place is a travel destination with a point location.
type Place struct {
	ID        string
	Name      string
	Longitude float64
	Latitude  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
