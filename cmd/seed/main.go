package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tripora/tripora-api/config"
	"github.com/tripora/tripora-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@tripora.dev"
	password := "password123"
	name := "Demo Traveler"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, mobile)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, "+6281234567890").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	places := []struct {
		name     string
		lng, lat float64
	}{
		{"Bali", 115.1889, -8.4095},
		{"Kyoto", 135.7681, 35.0116},
		{"Santorini", 25.4615, 36.3932},
	}
	for _, p := range places {
		if _, err := db.Exec(`
			INSERT INTO places (name, longitude, latitude)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, p.name, p.lng, p.lat); err != nil {
			log.Fatalf("failed to seed place %s: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d places\n", len(places))

	packages := []struct {
		title    string
		price    float64
		duration string
		features []string
		place    string
		lat, lng float64
	}{
		{"Bali Beach Escape", 499, "5 days", []string{"Flights", "Hotel", "Breakfast"}, "Bali", -8.4095, 115.1889},
		{"Kyoto Temple Trail", 899, "7 days", []string{"Flights", "Ryokan", "Guided tours"}, "Kyoto", 35.0116, 135.7681},
		{"Santorini Sunset Week", 1299, "6 days", []string{"Flights", "Cliffside villa", "Boat trip"}, "Santorini", 36.3932, 25.4615},
	}
	for _, pk := range packages {
		if _, err := db.Exec(`
			INSERT INTO packages (title, price, duration, features, place, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (title) DO NOTHING
		`, pk.title, pk.price, pk.duration, pk.features, pk.place, pk.lat, pk.lng); err != nil {
			log.Fatalf("failed to seed package %s: %v", pk.title, err)
		}
	}
	fmt.Printf("seeded %d packages\n", len(packages))
}
