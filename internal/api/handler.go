package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/chestorix/climacell-exporter/internal/domain/interfaces"
)

type MetricsHandler struct {
	scraper    interfaces.Scraper
	exposition http.Handler
	logger     *logrus.Logger
}

func NewMetricsHandler(scraper interfaces.Scraper, gatherer prometheus.Gatherer, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		scraper: scraper,
		exposition: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog:      logger,
			ErrorHandling: promhttp.ContinueOnError,
		}),
		logger: logger,
	}
}

// ScrapeHandler опрашивает провайдера и отдаёт текущее содержимое набора метрик.
// Ответ всегда 200: деградация провайдера видна только через climacell_state.
func (h *MetricsHandler) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.scraper.Scrape(r.Context()); err != nil {
		h.logger.WithError(err).Debug("serving last known values")
	}
	h.exposition.ServeHTTP(w, r)
}
