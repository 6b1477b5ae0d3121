package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/edunexus/schoolrecords/internal/bootstrap"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
	"github.com/edunexus/schoolrecords/internal/seed"
)

func main() {
	seedValue := flag.Int64("seed", time.Now().UnixNano(), "random source seed")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seeder := seed.NewSeeder(deps.Services, rand.New(rand.NewSource(*seedValue)), logger.Component("seed"))
	summary, err := seeder.Run(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		dbPool.Close()
		os.Exit(1)
	}

	lgr.Info().
		Int("departments", summary.Departments).
		Int("instructors", summary.Instructors).
		Int("students", summary.Students).
		Int("courses", summary.Courses).
		Int("enrollments", summary.Enrollments).
		Msg("Seeding complete")
}
