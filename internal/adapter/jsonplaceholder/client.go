package jsonplaceholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/metrics"
)

const sourceName = "jsonplaceholder"

// Client получает полную коллекцию фото из внешнего JSON API.
// Постраничной выдачи у источника нет, каждый вызов тянет всё.
type Client struct {
	httpClient *http.Client
	photosURL  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Options настраивает Client. Нулевой RPS отключает ограничение частоты.
type Options struct {
	PhotosURL string
	Timeout   time.Duration
	RPS       float64
}

// NewClient создает новый экземпляр Client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		photosURL:  opts.PhotosURL,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

func (c *Client) fail(reason string, err error) error {
	metrics.UpstreamFetchErrors.WithLabelValues(reason).Inc()
	c.logger.Error("upstream fetch failed", "url", c.photosURL, "reason", reason, "error", err)
	return &domain.FetchError{Source: sourceName, Err: err}
}

// ListPhotos реализует ports.PhotoSource.
func (c *Client) ListPhotos(ctx context.Context) ([]domain.Photo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, c.fail("rate_limit", fmt.Errorf("ожидание лимитера: %w", err))
	}

	start := time.Now()
	defer func() {
		metrics.UpstreamFetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.photosURL, nil)
	if err != nil {
		return nil, c.fail("request", fmt.Errorf("ошибка создания HTTP-запроса: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail("transport", fmt.Errorf("ошибка выполнения HTTP-запроса: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, c.fail("status", fmt.Errorf("источник вернул статус %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var raw []PhotoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, c.fail("decode", fmt.Errorf("ошибка декодирования JSON ответа: %w", err))
	}

	photos := make([]domain.Photo, 0, len(raw))
	for _, p := range raw {
		photos = append(photos, mapPhotoToDomain(p))
	}

	c.logger.Debug("upstream photos fetched",
		"count", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photos, nil
}
