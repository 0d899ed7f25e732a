package main

import (
	"log"

	"peoplepulse/config"
	"peoplepulse/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
}
