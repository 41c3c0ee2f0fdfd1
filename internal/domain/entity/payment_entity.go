package entity

import "time"

// Payment records a completed booking payment. PackageTitle links the
// payment to a TravelPackage by title; PaymentRef is the gateway reference.
type Payment struct {
	ID           string
	Name         string
	Mobile       string
	Email        string
	PackageTitle string
	PaymentRef   string
	Amount       float64
	CreatedAt    time.Time
}

// Booking pairs a customer's payment with the package it bought.
type Booking struct {
	Customer Payment
	Package  TravelPackage
}
