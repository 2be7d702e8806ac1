package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"airline-ops-server/config"
	"airline-ops-server/db"
	"airline-ops-server/handlers"
)

func main() {
	// load database credentials
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading credentials from environment")
	}

	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// port flag overrides the configured port
	port := flag.String("port", cfg.Port, "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(cfg)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// apply scheduling policy
	handlers.SetSchedulingPolicy(cfg.Scheduling.RejectPastDeparture)

	// setup routes
	SetupRoutes(*port)
}
