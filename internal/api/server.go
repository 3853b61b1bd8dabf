// Package api - HTTP-сервер экспортера и эндпоинт /metrics.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/chestorix/climacell-exporter/internal/config"
	"github.com/chestorix/climacell-exporter/internal/domain/interfaces"
)

type Server struct {
	cfg    *config.ExporterConfig
	router *Router
	logger *logrus.Logger
}

func NewServer(cfg *config.ExporterConfig, scraper interfaces.Scraper, gatherer prometheus.Gatherer, logger *logrus.Logger) *Server {
	router := NewRouter(logger)
	router.SetupRoutes(NewMetricsHandler(scraper, gatherer, logger))
	return &Server{
		cfg:    cfg,
		router: router,
		logger: logger,
	}
}

// Handler возвращает корневой обработчик со всеми middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Infoln("Server listened address: ", s.cfg.Address)

	return httpServer.ListenAndServe()
}
