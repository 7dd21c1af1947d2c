package main

import (
	"context"
	"flag"
	"os"

	"github.com/memitrading/memi/internal/pkg/logger"
	"github.com/memitrading/memi/internal/server"
)

// @title MEMI Trading API
// @version 1.0
// @description REST API behind the MEMI Trading public site and admin dashboard

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default configs/config.yaml)")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
