package main

import (
	"log"

	"voxel-quest/internal/config"
	"voxel-quest/internal/db"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	inserted, err := db.NewStore(conn).SeedDemo()
	if err != nil {
		log.Fatalf("demo seeding failed: %v", err)
	}
	log.Printf("seeded %d demo sessions", inserted)
}
