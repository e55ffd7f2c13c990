package main

import (
	"log"

	"github.com/arkamaulana/eventhub/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := server.Start(logger); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
