package main

import (
	"os"

	"github.com/yigit/siswa/internal/pkg/logger"
	"github.com/yigit/siswa/internal/server"
)

// @title Siswa API
// @version 1.0
// @description In-memory student record manager
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
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
