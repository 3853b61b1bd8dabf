package climacell

import (
	"encoding/json"
	"net/url"

	"github.com/chestorix/climacell-exporter/internal/metrics"
)

const (
	LegacyName       = "v3"
	DefaultLegacyURL = "https://api.climacell.co/v3/weather/realtime"
)

var legacyFields = []string{"temp", "feels_like", "humidity", "wind_speed", "precipitation"}

// legacyResponse - плоский ответ v3: каждое поле обёрнуто в {"value": ...}.
type legacyResponse struct {
	Temp          *legacyValue `json:"temp" validate:"required"`
	FeelsLike     *legacyValue `json:"feels_like" validate:"required"`
	WindSpeed     *legacyValue `json:"wind_speed" validate:"required"`
	Humidity      *legacyValue `json:"humidity" validate:"required"`
	Precipitation *legacyValue `json:"precipitation" validate:"required"`
}

type legacyValue struct {
	Value *float64 `json:"value" validate:"required"`
}

// LegacyProvider работает с realtime API v3.
type LegacyProvider struct {
	loc     Location
	baseURL string
}

func NewLegacyProvider(loc Location, baseURL string) *LegacyProvider {
	if baseURL == "" {
		baseURL = DefaultLegacyURL
	}
	return &LegacyProvider{loc: loc, baseURL: baseURL}
}

func (p *LegacyProvider) Name() string {
	return LegacyName
}

func (p *LegacyProvider) URL() string {
	q := url.Values{}
	q.Set("lat", p.loc.Lat)
	q.Set("lon", p.loc.Lon)
	q.Set("unit_system", "si")
	for _, f := range legacyFields {
		q.Add("fields[]", f)
	}
	q.Set("apikey", p.loc.Token)
	return p.baseURL + "?" + q.Encode()
}

func (p *LegacyProvider) Decode(body []byte) (metrics.Observation, error) {
	var resp legacyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return metrics.Observation{}, decodeError(err)
	}
	if err := validate.Struct(resp); err != nil {
		return metrics.Observation{}, decodeError(err)
	}

	return metrics.Observation{
		Temperature:   *resp.Temp.Value,
		FeelsLike:     *resp.FeelsLike.Value,
		WindSpeed:     *resp.WindSpeed.Value,
		Humidity:      *resp.Humidity.Value,
		Precipitation: *resp.Precipitation.Value,
	}, nil
}
