package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/handler"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/server"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("marketplace-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetEnvironmentLevel(cfg.App.Environment)

	if cfg.App.UsesInsecureSignKey() {
		log.Warn().Msg("tokens are signed with the built-in development key, set APP_TOKEN_SIGN_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs, stopJobs := context.WithCancel(context.Background())
	jobsDone := make(chan struct{})
	go func() {
		workers.NewWorkers(storages, cfg.Workers, log).Run(jobs)
		close(jobsDone)
	}()

	srv.RunServer()

	stopJobs()
	<-jobsDone
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
