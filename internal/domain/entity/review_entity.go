package entity

import "time"

// Review is a user rating of a place, 1 to 5.
type Review struct {
	ID        string
	UserID    string
	PlaceID   string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ReviewWithAuthor is a review joined with the reviewer's display name.
type ReviewWithAuthor struct {
	Review
	AuthorName string
}
