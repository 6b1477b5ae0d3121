package main

import (
	"os"

	"github.com/edunexus/schoolrecords/internal/pkg/logger"
	"github.com/edunexus/schoolrecords/internal/server"
)

// @title School Records API
// @version 1.0
// @description REST API for departments, instructors, students, courses and enrollments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@edunexus.ph

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token as "Bearer <token>"

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
