package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/playtube/playtube-api/config"
	"github.com/playtube/playtube-api/pkg/helpers"
)

// Dev seeder: one demo channel with a couple of published videos so the
// API has something to return on a fresh database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var ownerID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, full_name, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, "demochannel", "demo@playtube.dev", "Demo Channel", hash, "https://storage.googleapis.com/playtube-dev/avatars/demo.png").Scan(&ownerID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=demochannel password=%s\n", ownerID, password)

	videos := []struct {
		title, description, videoURL, thumbURL string
		duration                               float64
	}{
		{"Getting started with PlayTube", "A quick tour of the platform.", "https://storage.googleapis.com/playtube-dev/videos/tour.mp4", "https://storage.googleapis.com/playtube-dev/thumbnails/tour.jpg", 182.4},
		{"Channel setup in five minutes", "Avatar, cover image and your first upload.", "https://storage.googleapis.com/playtube-dev/videos/setup.mp4", "https://storage.googleapis.com/playtube-dev/thumbnails/setup.jpg", 311.0},
	}
	for _, v := range videos {
		var id string
		err = db.QueryRow(`
			INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
			VALUES ($1, $2, $3, $4, $5, $6, true)
			RETURNING id
		`, ownerID, v.title, v.description, v.videoURL, v.thumbURL, v.duration).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed video %q: %v", v.title, err)
		}
		fmt.Printf("seeded video: id=%s title=%q\n", id, v.title)
	}
}
