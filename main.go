package main

import (
	"flag"
	"log"

	"pawlearn_backend/internal/app"
	"pawlearn_backend/internal/config"
	"pawlearn_backend/pkg/configwatcher"
)

// @title PawLearn Backend API
// @version 1.0
// @description Animal adoption board with pet-care courses, quizzes and badges.

// @contact.name API Support
// @contact.email support@pawlearn.io

// @host localhost:3000
// @BasePath /api
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run schema migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)

	if cfg.MigrateOnly {
		log.Println("Migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.OnConfigReload)

	application.Run()
}
