// Package service - цикл опроса провайдера и обновления метрик.
package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/chestorix/climacell-exporter/internal/climacell"
	"github.com/chestorix/climacell-exporter/internal/domain/interfaces"
	"github.com/chestorix/climacell-exporter/internal/utils"
)

type ScrapeService struct {
	provider interfaces.Provider
	fetcher  interfaces.Fetcher
	recorder interfaces.Recorder
	logger   *logrus.Logger
}

func NewScrapeService(provider interfaces.Provider, fetcher interfaces.Fetcher, recorder interfaces.Recorder, logger *logrus.Logger) *ScrapeService {
	return &ScrapeService{
		provider: provider,
		fetcher:  fetcher,
		recorder: recorder,
		logger:   logger,
	}
}

// Scrape запрашивает провайдера и обновляет метрики.
// При любой ошибке state выставляется в 0, погодные метрики не трогаются,
// ошибка возвращается вызывающему только для логирования.
func (s *ScrapeService) Scrape(ctx context.Context) error {
	rawURL := s.provider.URL()
	log := s.logger.WithField("provider", s.provider.Name())

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.recorder.RecordFailure()
		log.WithError(err).
			WithField("url", utils.RedactQuery(rawURL, "apikey")).
			Error("Error getting URL")
		return err
	}

	obs, err := s.provider.Decode(body)
	if err != nil {
		s.recorder.RecordFailure()
		if errors.Is(err, climacell.ErrEmptyTimeline) {
			log.WithError(err).Error("Upstream response has no intervals")
		} else {
			log.WithError(err).Error("Error converting to JSON")
		}
		return err
	}

	s.recorder.RecordSuccess(obs)
	log.WithFields(logrus.Fields{
		"temperature": obs.Temperature,
		"humidity":    obs.Humidity,
	}).Debug("Scrape succeeded")
	return nil
}
