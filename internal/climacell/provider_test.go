package climacell_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chestorix/climacell-exporter/internal/climacell"
	"github.com/chestorix/climacell-exporter/internal/config"
	"github.com/chestorix/climacell-exporter/internal/metrics"
)

var testLocation = climacell.Location{Token: "secret", Lat: "52.37", Lon: "4.89"}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     string
		wantErr  bool
	}{
		{name: "legacy", provider: "v3", want: climacell.LegacyName},
		{name: "timelines", provider: "v4", want: climacell.TimelinesName},
		{name: "default", provider: "", want: climacell.TimelinesName},
		{name: "unknown", provider: "v5", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := climacell.NewProvider(config.ExporterConfig{Token: "x", Lat: "1", Lon: "2", Provider: test.provider})
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p.Name())
		})
	}
}

func TestLegacyProvider_URL(t *testing.T) {
	p := climacell.NewLegacyProvider(testLocation, "")

	u, err := url.Parse(p.URL())
	require.NoError(t, err)

	assert.Equal(t, "api.climacell.co", u.Host)
	assert.Equal(t, "/v3/weather/realtime", u.Path)
	q := u.Query()
	assert.Equal(t, "52.37", q.Get("lat"))
	assert.Equal(t, "4.89", q.Get("lon"))
	assert.Equal(t, "si", q.Get("unit_system"))
	assert.Equal(t, "secret", q.Get("apikey"))
	assert.Equal(t, []string{"temp", "feels_like", "humidity", "wind_speed", "precipitation"}, q["fields[]"])
}

func TestTimelinesProvider_URL(t *testing.T) {
	p := climacell.NewTimelinesProvider(climacell.Location{Token: "k&y", Lat: "1 2", Lon: "3"}, "http://localhost:1234/v4/timelines")

	u, err := url.Parse(p.URL())
	require.NoError(t, err)

	assert.Equal(t, "localhost:1234", u.Host)
	q := u.Query()
	assert.Equal(t, "1 2,3", q.Get("location"))
	assert.Equal(t, "k&y", q.Get("apikey"))
	assert.Equal(t, "current", q.Get("timesteps"))
	assert.Equal(t, "metric", q.Get("units"))
	assert.Equal(t, []string{"temperature", "temperatureApparent", "humidity", "windSpeed", "precipitationIntensity"}, q["fields"])
}

func TestLegacyProvider_Decode(t *testing.T) {
	p := climacell.NewLegacyProvider(testLocation, "")

	tests := []struct {
		name    string
		body    string
		want    metrics.Observation
		wantErr error
	}{
		{
			name: "well formed",
			body: `{"temp":{"value":12.3,"units":"C"},"feels_like":{"value":10.9},"wind_speed":{"value":4.1},
				"humidity":{"value":81},"precipitation":{"value":0},"observation_time":{"value":"2020-01-01T00:00:00Z"}}`,
			want: metrics.Observation{Temperature: 12.3, FeelsLike: 10.9, WindSpeed: 4.1, Humidity: 81, Precipitation: 0},
		},
		{
			name:    "malformed json",
			body:    `{"temp":`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "missing field",
			body:    `{"temp":{"value":1},"feels_like":{"value":1},"wind_speed":{"value":1},"humidity":{"value":1}}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "missing value",
			body:    `{"temp":{},"feels_like":{"value":1},"wind_speed":{"value":1},"humidity":{"value":1},"precipitation":{"value":1}}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "provider error payload",
			body:    `{"statusCode":401,"errorCode":"Unauthorized","message":"apikey is invalid"}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "wrong type",
			body:    `{"temp":{"value":"warm"},"feels_like":{"value":1},"wind_speed":{"value":1},"humidity":{"value":1},"precipitation":{"value":1}}`,
			wantErr: climacell.ErrDecode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obs, err := p.Decode([]byte(test.body))
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, obs)
		})
	}
}

func TestTimelinesProvider_Decode(t *testing.T) {
	p := climacell.NewTimelinesProvider(testLocation, "")

	tests := []struct {
		name    string
		body    string
		want    metrics.Observation
		wantErr error
	}{
		{
			name: "well formed",
			body: `{"data":{"timelines":[{"intervals":[{"values":{"temperature":21.5,"temperatureApparent":20.1,
				"humidity":55,"windSpeed":3.2,"precipitationIntensity":0}}]}]}}`,
			want: metrics.Observation{Temperature: 21.5, FeelsLike: 20.1, WindSpeed: 3.2, Humidity: 55, Precipitation: 0},
		},
		{
			name: "only first interval used",
			body: `{"data":{"timelines":[{"timestep":"current","intervals":[
				{"startTime":"2021-01-01T00:00:00Z","values":{"temperature":-3,"temperatureApparent":-7.5,"humidity":99,"windSpeed":12,"precipitationIntensity":1.25}},
				{"values":{"temperature":100,"temperatureApparent":100,"humidity":100,"windSpeed":100,"precipitationIntensity":100}}]}]}}`,
			want: metrics.Observation{Temperature: -3, FeelsLike: -7.5, WindSpeed: 12, Humidity: 99, Precipitation: 1.25},
		},
		{
			name:    "empty timelines",
			body:    `{"data":{"timelines":[]}}`,
			wantErr: climacell.ErrEmptyTimeline,
		},
		{
			name:    "timelines absent",
			body:    `{"data":{}}`,
			wantErr: climacell.ErrEmptyTimeline,
		},
		{
			name:    "empty intervals",
			body:    `{"data":{"timelines":[{"intervals":[]}]}}`,
			wantErr: climacell.ErrEmptyTimeline,
		},
		{
			name:    "missing data",
			body:    `{"errorCode":401001}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "missing values",
			body:    `{"data":{"timelines":[{"intervals":[{"startTime":"2021-01-01T00:00:00Z"}]}]}}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "missing field",
			body:    `{"data":{"timelines":[{"intervals":[{"values":{"temperature":1,"humidity":1,"windSpeed":1,"precipitationIntensity":1}}]}]}}`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "malformed json",
			body:    `not json`,
			wantErr: climacell.ErrDecode,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: climacell.ErrDecode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obs, err := p.Decode([]byte(test.body))
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, obs)
		})
	}
}
