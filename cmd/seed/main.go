package main

import (
	"log"

	"community-watch/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if err := config.NewSeeder(db).RunDemo(cfg.Seed); err != nil {
		log.Fatalf("❌ Failed to seed demo data: %v", err)
	}

	log.Printf("✅ Seed completed (admin: %s)", cfg.Seed.AdminEmail)
}
