package climacell

import (
	"encoding/json"
	"net/url"

	"github.com/chestorix/climacell-exporter/internal/metrics"
)

const (
	TimelinesName       = "v4"
	DefaultTimelinesURL = "https://data.climacell.co/v4/timelines"
)

var timelinesFields = []string{"temperature", "temperatureApparent", "humidity", "windSpeed", "precipitationIntensity"}

// timelinesResponse - ответ v4: data.timelines[].intervals[].values.
type timelinesResponse struct {
	Data *struct {
		Timelines []struct {
			Intervals []struct {
				Values *timelineValues `json:"values"`
			} `json:"intervals"`
		} `json:"timelines"`
	} `json:"data"`
}

type timelineValues struct {
	Temperature            *float64 `json:"temperature" validate:"required"`
	TemperatureApparent    *float64 `json:"temperatureApparent" validate:"required"`
	Humidity               *float64 `json:"humidity" validate:"required"`
	WindSpeed              *float64 `json:"windSpeed" validate:"required"`
	PrecipitationIntensity *float64 `json:"precipitationIntensity" validate:"required"`
}

// TimelinesProvider работает с timelines API v4, шаг current.
type TimelinesProvider struct {
	loc     Location
	baseURL string
}

func NewTimelinesProvider(loc Location, baseURL string) *TimelinesProvider {
	if baseURL == "" {
		baseURL = DefaultTimelinesURL
	}
	return &TimelinesProvider{loc: loc, baseURL: baseURL}
}

func (p *TimelinesProvider) Name() string {
	return TimelinesName
}

func (p *TimelinesProvider) URL() string {
	q := url.Values{}
	q.Set("location", p.loc.Lat+","+p.loc.Lon)
	for _, f := range timelinesFields {
		q.Add("fields", f)
	}
	q.Set("timesteps", "current")
	q.Set("units", "metric")
	q.Set("apikey", p.loc.Token)
	return p.baseURL + "?" + q.Encode()
}

func (p *TimelinesProvider) Decode(body []byte) (metrics.Observation, error) {
	var resp timelinesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return metrics.Observation{}, decodeError(err)
	}
	if resp.Data == nil {
		return metrics.Observation{}, decodeError(errMissingData)
	}
	if len(resp.Data.Timelines) == 0 || len(resp.Data.Timelines[0].Intervals) == 0 {
		return metrics.Observation{}, ErrEmptyTimeline
	}

	values := resp.Data.Timelines[0].Intervals[0].Values
	if values == nil {
		return metrics.Observation{}, decodeError(errMissingValues)
	}
	if err := validate.Struct(values); err != nil {
		return metrics.Observation{}, decodeError(err)
	}

	return metrics.Observation{
		Temperature:   *values.Temperature,
		FeelsLike:     *values.TemperatureApparent,
		WindSpeed:     *values.WindSpeed,
		Humidity:      *values.Humidity,
		Precipitation: *values.PrecipitationIntensity,
	}, nil
}
