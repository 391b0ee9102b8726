package main

import (
	"log"

	"github.com/devboardhq/devboard/internal/config"
	"github.com/devboardhq/devboard/internal/database"
	"github.com/devboardhq/devboard/internal/server"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseDSN)

	r, err := server.New(db, cfg)
	if err != nil {
		log.Fatal("Server setup failed:", err)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
