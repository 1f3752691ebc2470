package main

import (
	"minecoin/internal/config"
	"minecoin/internal/server"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()
	cfg := config.New()

	// Create and run server
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal("Failed to create server", "err", err)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatal("Server error", "err", err)
	}
}
