package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент каталога пространств основного backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSpace получает пространство и его тарифы
func (c *Client) GetSpace(ctx context.Context, spaceID int64) (*domain.SpaceTariffProfile, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetSpace", trace.WithAttributes(attribute.Int64("space.id", spaceID)))
	defer span.End()

	profile, err := c.getSpace(ctx, spaceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return profile, nil
}

func (c *Client) getSpace(ctx context.Context, spaceID int64) (*domain.SpaceTariffProfile, error) {
	url := fmt.Sprintf("%s/api/espacios/%d", c.baseURL, spaceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrSpaceNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var space Space
	if err := json.NewDecoder(resp.Body).Decode(&space); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Неактивное пространство для расчета равносильно отсутствующему
	if space.Activo != nil && !*space.Activo {
		c.log.Warn("Catalog: space id=%d is inactive", spaceID)
		return nil, ErrSpaceNotFound
	}

	profile, err := space.ToDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Catalog: fetched space id=%d type=%s", spaceID, profile.Type)
	return profile, nil
}
