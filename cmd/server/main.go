package main

import (
	"log"

	"itam/internal/config"
	"itam/internal/database"
	"itam/internal/handlers"
	"itam/internal/server"
)

func main() {
	cfg := config.Load()

	database.Init(cfg)
	handlers.Init(cfg)

	r := server.NewRouter(cfg)
	log.Printf("listening on :%s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
