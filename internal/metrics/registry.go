package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Registry хранит шесть gauge-метрик экспортера.
// Запись наблюдения и сбор выполняются под одной блокировкой,
// поэтому отрисовка не видит наполовину обновлённый набор.
type Registry struct {
	mu  sync.RWMutex
	reg *prometheus.Registry

	temperature   prometheus.Gauge
	feelsLike     prometheus.Gauge
	windSpeed     prometheus.Gauge
	humidity      prometheus.Gauge
	precipitation prometheus.Gauge
	state         prometheus.Gauge
}

func NewRegistry() *Registry {
	r := &Registry{
		reg:           prometheus.NewRegistry(),
		temperature:   newGauge(TemperatureName, "Temperature"),
		feelsLike:     newGauge(FeelsLikeName, "Apparent Temperature"),
		windSpeed:     newGauge(WindSpeedName, "Wind speed"),
		humidity:      newGauge(HumidityName, "Humidity"),
		precipitation: newGauge(PrecipitationName, "Precipitation"),
		state:         newGauge(StateName, "Scrape state"),
	}
	r.reg.MustRegister(r.temperature, r.feelsLike, r.windSpeed, r.humidity, r.precipitation, r.state)
	return r
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
}

// RecordSuccess перезаписывает пять погодных метрик и выставляет state в 1.
func (r *Registry) RecordSuccess(obs Observation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Set(1)
	r.temperature.Set(obs.Temperature)
	r.feelsLike.Set(obs.FeelsLike)
	r.windSpeed.Set(obs.WindSpeed)
	r.humidity.Set(obs.Humidity)
	r.precipitation.Set(obs.Precipitation)
}

// RecordFailure выставляет state в 0. Погодные метрики сохраняют последние успешные значения.
func (r *Registry) RecordFailure() {
	r.mu.Lock()
	r.state.Set(0)
	r.mu.Unlock()
}

// Gather реализует prometheus.Gatherer.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reg.Gather()
}
