// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/handler"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/server"
	"github.com/MKhiriev/go-location-info/internal/service"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("location-info-server")
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	if cfg.UsesInsecureSignKey() {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, using the insecure development key")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	adapters, err := adapter.NewAdapters(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	services, err := service.NewServices(storages, adapters, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, stop, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
