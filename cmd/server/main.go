package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-token-auth/internal/config"
	myHTTP "github.com/MKhiriev/go-token-auth/internal/handler/http"
	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/MKhiriev/go-token-auth/internal/server"
	"github.com/MKhiriev/go-token-auth/internal/service"
	"github.com/MKhiriev/go-token-auth/internal/store"
	"github.com/MKhiriev/go-token-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-token-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, log,
		myHTTP.WithMetrics(m, registry),
		myHTTP.WithReadinessCheck(storages.Ping),
		myHTTP.WithRequestTimeout(cfg.Server.RequestTimeout),
	)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
