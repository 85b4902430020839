package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchAll requests the full catalog. Failures are returned as-is, no
// retries; the caller decides what to display instead.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	return c.get(ctx, c.baseURL+"/products")
}

// FetchFiltered requests the catalog subset matching the free-text query.
func (c *Client) FetchFiltered(ctx context.Context, query string) ([]domain.Product, error) {
	return c.get(ctx, c.baseURL+"/products/search?value="+url.QueryEscape(query))
}

func (c *Client) get(ctx context.Context, u string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return products, nil
}
