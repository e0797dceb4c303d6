package numbeo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"numbeo/internal/errors"
	"numbeo/internal/interfaces"
	"numbeo/internal/models"
)

const (
	// DefaultBaseURL is the public Numbeo API host
	DefaultBaseURL = "https://www.numbeo.com"
	// DefaultTimeout bounds each HTTP request
	DefaultTimeout = 30 * time.Second

	itemsPath      = "/api/items"
	cityPricesPath = "/api/city_prices"
)

var _ interfaces.PriceClient = (*Client)(nil)

// Client provides access to the Numbeo pricing API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Numbeo API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the API host, mostly for tests and proxies.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Items retrieves the item catalog. A response without an items array
// yields an empty catalog.
func (c *Client) Items(ctx context.Context) ([]models.ItemMetadata, error) {
	var resp models.ItemsResponse
	if err := c.get(ctx, itemsPath, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, errors.APIErrorf("Numbeo API error: %s", resp.Error).
			WithContext("endpoint", itemsPath)
	}

	return resp.Items, nil
}

// CityPrices retrieves the price observations for one city.
func (c *Client) CityPrices(ctx context.Context, query string) (*models.CityPrices, error) {
	var resp models.CityPrices
	if err := c.get(ctx, cityPricesPath, url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, errors.APIErrorf("Numbeo API error: %s", resp.Error).
			WithContext("endpoint", cityPricesPath).
			WithContext("query", query).
			WithSuggestion("Check the spelling of the city and country")
	}

	return &resp, nil
}

// FetchAll retrieves the catalog and the city prices concurrently. The first
// failure cancels the other request and is returned.
func (c *Client) FetchAll(ctx context.Context, query string) ([]models.ItemMetadata, *models.CityPrices, error) {
	var (
		items  []models.ItemMetadata
		prices *models.CityPrices
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = c.Items(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		prices, err = c.CityPrices(gctx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	c.logger.Debug("fetched numbeo data",
		"query", query,
		"items", len(items),
		"prices", len(prices.Prices),
	)

	return items, prices, nil
}
