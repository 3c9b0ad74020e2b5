package newbook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// Client клиент для работы с Booking Match API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking Match API
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchSites получает полный каталог комнат/сайтов
func (c *Client) FetchSites(ctx context.Context) ([]domain.Room, error) {
	var sites []Site
	if err := c.get(ctx, c.baseURL+"/api/v1/sites", &sites); err != nil {
		return nil, err
	}
	return ToDomainSites(sites), nil
}

// FetchStayingBookings получает бронирования, проживающие в указанную дату
func (c *Client) FetchStayingBookings(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bookings/staying?%s", c.baseURL,
		url.Values{"date": {date.Format(domain.DateFormat)}}.Encode())

	var records []BookingRecord
	if err := c.get(ctx, endpoint, &records); err != nil {
		return nil, err
	}
	return ToDomainBookings(records), nil
}

// get выполняет GET-запрос и декодирует JSON-ответ в out
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn("Booking Match API rejected the request: status %d for %s", resp.StatusCode, endpoint)
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("Booking Match API returned unexpected status %d for %s", resp.StatusCode, endpoint)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
