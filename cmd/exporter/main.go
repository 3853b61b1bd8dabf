package main

import (
	"errors"
	"flag"
	"io/fs"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/chestorix/climacell-exporter/internal/api"
	"github.com/chestorix/climacell-exporter/internal/climacell"
	"github.com/chestorix/climacell-exporter/internal/config"
	"github.com/chestorix/climacell-exporter/internal/metrics"
	"github.com/chestorix/climacell-exporter/internal/service"
	"github.com/chestorix/climacell-exporter/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.Load(os.Args[1:], nil, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	utils.LogBuildInfo(logger, buildVersion, buildDate, buildCommit)

	provider, err := climacell.NewProvider(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create provider")
	}

	registry := metrics.NewRegistry()
	client := climacell.NewClient(http.DefaultClient, logger)
	scraper := service.NewScrapeService(provider, client, registry, logger)
	server := api.NewServer(&cfg, scraper, registry, logger)

	logger.WithField("provider", provider.Name()).Info("Starting climacell_exporter")
	if err := server.Start(); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
