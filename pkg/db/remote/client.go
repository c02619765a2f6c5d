// Package remote reads the product catalog from an HTTP endpoint that returns
// every product as a JSON array in a single response.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/byxorna/storefront/pkg/db"
	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_requests_total",
		Help: "Catalog requests by response status (\"error\" when no response)",
	}, []string{"status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_catalog_request_duration_seconds",
		Help:    "Catalog request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	skippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_products_skipped_total",
		Help: "Catalog records dropped because they failed validation",
	})
)

type Config struct {
	Endpoint  string
	UserAgent string
	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout, mostly for tests.
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	logger     zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("catalog endpoint is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: hc,
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
		logger:     logging.NewLogger("catalog-client"),
	}, nil
}

func (c *Client) Endpoint() string { return c.endpoint }

// List fetches the whole catalog. Every failure is returned as a
// *db.FetchError.
func (c *Client) List(ctx context.Context) ([]v1.Product, error) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, c.fetchError(0, fmt.Errorf("unable to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("error").Inc()
		return nil, c.fetchError(0, err)
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fetchError(resp.StatusCode, db.ErrUnexpectedStatus)
	}

	var records []v1.Product
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, c.fetchError(resp.StatusCode, fmt.Errorf("%w: %v", db.ErrDecode, err))
	}

	products := make([]v1.Product, 0, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			skippedTotal.Inc()
			c.logger.Warn().Err(err).Str("id", records[i].ID.String()).Msg("skipping invalid product")
			continue
		}
		products = append(products, records[i])
	}

	c.logger.Debug().
		Int("products", len(products)).
		Dur("duration", time.Since(start)).
		Msg("catalog fetched")
	return products, nil
}

func (c *Client) fetchError(status int, err error) *db.FetchError {
	return &db.FetchError{Endpoint: c.endpoint, StatusCode: status, Err: err}
}
