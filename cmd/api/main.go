package main

import (
	"context"
	"flag"
	"os"

	"github.com/Boiketlo2/school-reporting/internal/bootstrap"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
	"github.com/Boiketlo2/school-reporting/internal/server"
)

func main() {
	defaultConfig := "configs/config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		defaultConfig = envPath
	}

	configPath := flag.String("config", defaultConfig, "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	database, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database pool")
	}
	defer database.Close()

	if err := bootstrap.RunMigrationsAndSeed(ctx, database, *migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Migrations or seeding failed, continuing degraded")
	}

	deps := bootstrap.BuildDependencies(cfg, database)
	router := bootstrap.SetupRouter(cfg, deps)

	if err := server.New(cfg.Server.Port, router).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
