package main

import (
	"marquee/config"
	"marquee/di"
	"marquee/helper"
	"marquee/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../internal/handlers,../../transport/http/response -o ../../docs

// @title Marquee API
// @version 1.0
// @description Venue, artist and show booking plus a trivia question bank.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	server, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	server.Serve()
}
