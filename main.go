package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"debtwise/cmd"
	"debtwise/internal/config"
	"debtwise/internal/logger"
)

func main() {
	// .env is optional; environment variables alone are fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		cmd.Execute(nil)
		return
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute(cfg)
}
