// Package config содержит конфигурацию экспортера и её загрузку из флагов и окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultAddress  = ":9095"
	DefaultProvider = "v4"
	DefaultLogLevel = "info"
)

var ErrMissingConfig = errors.New("missing required configuration")

// ExporterConfig содержит конфигурационные параметры экспортера.
// Заполняется один раз при старте и дальше только читается.
type ExporterConfig struct {
	Token    string // API-ключ ClimaCell
	Lat      string // широта, передаётся провайдеру без проверки формата
	Lon      string // долгота
	Address  string // адрес HTTP-сервера (например: ":9095")
	Provider string // версия API провайдера: v3 или v4
	BaseURL  string // переопределение адреса провайдера (пусто - адрес по умолчанию)
	LogLevel string
}

type envConfig struct {
	Token    string `env:"TOKEN"`
	Lat      string `env:"LAT"`
	Lon      string `env:"LON"`
	Address  string `env:"ADDRESS"`
	Provider string `env:"PROVIDER"`
	BaseURL  string `env:"CLIMACELL_URL"`
	LogLevel string `env:"LOG_LEVEL"`
}

// Load разбирает флаги из args и переменные окружения.
// Флаг имеет приоритет; если он не задан, берётся одноимённая переменная окружения.
// environ == nil означает окружение процесса. Usage и ошибки разбора пишутся в output.
func Load(args []string, environ map[string]string, output io.Writer) (ExporterConfig, error) {
	fs := flag.NewFlagSet("climacell_exporter", flag.ContinueOnError)
	fs.SetOutput(output)

	var flags ExporterConfig
	fs.StringVar(&flags.Token, "token", "", "ClimaCell API token (env TOKEN)")
	fs.StringVar(&flags.Token, "t", "", "shorthand for -token")
	fs.StringVar(&flags.Lat, "lat", "", "location latitude (env LAT)")
	fs.StringVar(&flags.Lon, "lon", "", "location longitude (env LON)")
	fs.StringVar(&flags.Address, "a", DefaultAddress, "address and port to run server (env ADDRESS)")
	fs.StringVar(&flags.Provider, "provider", DefaultProvider, "upstream API version: v3 or v4 (env PROVIDER)")
	fs.StringVar(&flags.BaseURL, "base-url", "", "override upstream endpoint URL (env CLIMACELL_URL)")
	fs.StringVar(&flags.LogLevel, "log-level", DefaultLogLevel, "log level (env LOG_LEVEL)")

	if err := fs.Parse(args); err != nil {
		return ExporterConfig{}, err
	}

	var fromEnv envConfig
	if err := env.ParseWithOptions(&fromEnv, env.Options{Environment: environ}); err != nil {
		return ExporterConfig{}, fmt.Errorf("failed to parse env vars: %w", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(flagValue, envValue string, names ...string) string {
		for _, name := range names {
			if set[name] {
				return flagValue
			}
		}
		if envValue != "" {
			return envValue
		}
		return flagValue
	}

	cfg := ExporterConfig{
		Token:    pick(flags.Token, fromEnv.Token, "token", "t"),
		Lat:      pick(flags.Lat, fromEnv.Lat, "lat"),
		Lon:      pick(flags.Lon, fromEnv.Lon, "lon"),
		Address:  pick(flags.Address, fromEnv.Address, "a"),
		Provider: pick(flags.Provider, fromEnv.Provider, "provider"),
		BaseURL:  pick(flags.BaseURL, fromEnv.BaseURL, "base-url"),
		LogLevel: pick(flags.LogLevel, fromEnv.LogLevel, "log-level"),
	}
	if !strings.Contains(cfg.Address, ":") {
		cfg.Address = ":" + cfg.Address
	}

	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return ExporterConfig{}, err
	}
	return cfg, nil
}

// Validate проверяет наличие обязательных параметров.
func (c ExporterConfig) Validate() error {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "token (TOKEN)")
	}
	if c.Lat == "" {
		missing = append(missing, "lat (LAT)")
	}
	if c.Lon == "" {
		missing = append(missing, "lon (LON)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}
