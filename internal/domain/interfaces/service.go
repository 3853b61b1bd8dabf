// Package interfaces -  определение интерфейсов приложения.
package interfaces

import (
	"context"

	"github.com/chestorix/climacell-exporter/internal/metrics"
)

// Provider описывает версию API ClimaCell: адрес запроса и разбор ответа.
type Provider interface {
	// Name возвращает идентификатор провайдера (v3, v4).
	Name() string
	// URL возвращает полный адрес запроса с координатами, полями и ключом.
	URL() string
	// Decode извлекает наблюдение из тела ответа.
	Decode(body []byte) (metrics.Observation, error)
}

// Fetcher выполняет GET к провайдеру и возвращает тело ответа.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Recorder - сторона записи набора метрик.
type Recorder interface {
	RecordSuccess(obs metrics.Observation)
	RecordFailure()
}

// Scraper выполняет один цикл опроса провайдера.
type Scraper interface {
	Scrape(ctx context.Context) error
}
