package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// serviceBySlugQuery GROQ запрос услуги по slug
const serviceBySlugQuery = `*[_type == "service" && slug.current == $slug][0]{"slug": slug.current, name, duration, serviceType}`

// Client клиент query API Sanity для каталога услуг
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
// baseURL - адрес вида https://<project>.api.sanity.io/<version>/data/query/<dataset>
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу по slug
func (c *Client) GetService(ctx context.Context, slug string) (*Service, error) {
	param, err := json.Marshal(slug)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode slug: %v", ErrInternal, err)
	}

	q := url.Values{}
	q.Set("query", serviceBySlugQuery)
	q.Set("$slug", string(param))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("%w: bad query: %s", ErrInvalidResponse, apiErr.Error.Description)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Result == nil {
		return nil, ErrServiceNotFound
	}
	if result.Result.Slug == "" {
		result.Result.Slug = slug
	}

	return result.Result, nil
}

// GetServiceWithGracefulDegradation получает услугу с graceful degradation
// Отсутствие услуги пробрасывается как ErrServiceNotFound, все прочие ошибки превращаются в ErrServiceDegraded
func GetServiceWithGracefulDegradation(ctx context.Context, source Source, slug string, log Logger) (*Service, error) {
	service, err := source.GetService(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			log.Warn("Service %q not found in catalog", slug)
			return nil, err
		}

		log.Error("Catalog unavailable, applying graceful degradation for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: slug=%s, error=%v", ErrServiceDegraded, slug, err)
	}

	return service, nil
}
