package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Router struct {
	chi.Router
	logger *logrus.Logger
}

func NewRouter(logger *logrus.Logger) *Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	return &Router{
		Router: r,
		logger: logger,
	}
}

func (r *Router) SetupRoutes(metricsHandler *MetricsHandler) {
	r.Get("/metrics", metricsHandler.ScrapeHandler)
}
