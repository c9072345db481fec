// @title StudyBud
// @version 0.1
// @description Rooms, topics and messages for study groups.

// @host localhost:8080
// @BasePath /
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	_ "tush00nka/studybud/docs"
	"tush00nka/studybud/internal/app"
	"tush00nka/studybud/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
