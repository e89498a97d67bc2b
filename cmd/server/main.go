package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/handler/http"
	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/server"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cert-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	var registry ledger.Registry
	if cfg.Ledger.Enabled() {
		registry, err = ledger.NewRegistryClient(ctx, cfg.Ledger, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to registry ledger")
		}
	} else {
		log.Warn().Msg("no ledger configured; running in offline mode")
	}

	services := service.NewServices(*storages, registry, *cfg, log)

	handlers := http.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if registry != nil && cfg.Workers.AuditInterval > 0 {
		workers.NewWorkers(
			workers.NewAuditWorker(ctx, storages.Certificates, registry, cfg.Workers.AuditInterval, log),
		).Run()
	}

	srv.RunServer()
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
