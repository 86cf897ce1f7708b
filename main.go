package main

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/TWRT/ticktick-connector/internal/api"
	"github.com/TWRT/ticktick-connector/internal/repository"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ticktick-connector",
	})

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded")
	}

	token := os.Getenv("TICKTICK_TOKEN")
	if token == "" {
		logger.Fatal("TICKTICK_TOKEN not configured")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dbPath := os.Getenv("CONNECTOR_DB")
	if dbPath == "" {
		dbPath = "./connector.db"
	}

	db, err := repository.InitDB(dbPath)
	if err != nil {
		logger.Fatal("Error trying to initialize DB", "error", err)
	}
	defer db.Close()

	router := api.SetupRouter(db, token, os.Getenv("TICKTICK_BASE_URL"), logger)

	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("Error trying to start server", "error", err)
	}
}
