package entity

import "time"

// TravelPackage is a bookable tour offering tied to a place by name.
// Payments reference packages by Title, so titles act as a soft key.
type TravelPackage struct {
	ID        string
	Title     string
	Price     float64
	Duration  string
	Features  []string
	Place     string
	Latitude  float64
	Longitude float64
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
