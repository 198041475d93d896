package main

import (
	"log"
	"net/http"
	"time"

	"voxel-quest/internal/config"
	"voxel-quest/internal/db"
	"voxel-quest/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	err = db.ConfigurePool(conn,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		time.Duration(cfg.DBConnMaxLifetimeSeconds)*time.Second,
		time.Duration(cfg.DBConnMaxIdleTimeSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("database pool setup failed: %v", err)
	}

	if cfg.SeedOnStart {
		inserted, err := db.NewStore(conn).SeedDemo()
		if err != nil {
			log.Fatalf("demo seeding failed: %v", err)
		}
		log.Printf("seeded %d demo sessions", inserted)
	}

	srv := server.New(conn, cfg)
	addr := ":" + cfg.Port
	log.Printf("voxel-quest server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
