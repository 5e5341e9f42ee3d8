package main

import (
	"log"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/api"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/config"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	router := api.SetupRouter(cfg, db)

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
