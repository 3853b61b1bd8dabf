package climacell

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chestorix/climacell-exporter/internal/config"
	"github.com/chestorix/climacell-exporter/internal/domain/interfaces"
)

var validate = validator.New()

var (
	errMissingData   = errors.New("missing data object")
	errMissingValues = errors.New("missing interval values")
)

// Location - координаты и ключ, с которыми строится запрос к провайдеру.
type Location struct {
	Token string
	Lat   string
	Lon   string
}

// NewProvider выбирает адаптер по cfg.Provider.
func NewProvider(cfg config.ExporterConfig) (interfaces.Provider, error) {
	loc := Location{Token: cfg.Token, Lat: cfg.Lat, Lon: cfg.Lon}

	switch cfg.Provider {
	case LegacyName:
		return NewLegacyProvider(loc, cfg.BaseURL), nil
	case TimelinesName, "":
		return NewTimelinesProvider(loc, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s or %s)", cfg.Provider, LegacyName, TimelinesName)
	}
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
