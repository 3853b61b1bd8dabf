// Package climacell - клиент API ClimaCell и адаптеры форматов ответа.
package climacell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

var (
	ErrTransport     = errors.New("transport failure")
	ErrDecode        = errors.New("decode failure")
	ErrEmptyTimeline = errors.New("empty timeline")
)

type Client struct {
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создаёт клиента. При httpClient == nil используется клиент с настройками по умолчанию.
func NewClient(httpClient *http.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch выполняет GET по rawURL и возвращает тело ответа.
// Сетевые ошибки оборачиваются в ErrTransport. Статус ответа не проверяется:
// тело с ошибкой провайдера отбрасывается на этапе разбора.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTransport, stripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, stripURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Warn("unexpected upstream status")
	}
	return body, nil
}

// stripURL убирает URL из *url.Error: в нём лежит API-ключ.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
