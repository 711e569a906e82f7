package main

import (
	"roomops/config"
	"roomops/di"
	_ "roomops/docs"
	"roomops/helper"
	"roomops/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Room Operations API
// @version 1.0
// @description Checkout orchestration for hotel rooms: housekeeping dispatch, inspection and invoicing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
