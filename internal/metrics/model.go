// Package metrics  содержит набор погодных метрик экспортера и модель наблюдения.
package metrics

const (
	TemperatureName   = "climacell_temperature"
	FeelsLikeName     = "climacell_temperature_feels_like"
	WindSpeedName     = "climacell_wind_speed"
	HumidityName      = "climacell_humidity"
	PrecipitationName = "climacell_precipitation"
	StateName         = "climacell_state"
)

// Observation - значения, извлечённые из одного ответа провайдера.
// Единицы не пересчитываются, значения попадают в метрики как есть.
type Observation struct {
	Temperature   float64
	FeelsLike     float64
	WindSpeed     float64
	Humidity      float64
	Precipitation float64
}
