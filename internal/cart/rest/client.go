package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

var ErrNoToken = errors.New("missing auth token")

// APIError carries the backend's status and message so call sites can
// separate 400-class failures (message shown to the user) from everything
// else (generic connectivity notice).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cart api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("cart api: status %d", e.Status)
}

type failureBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

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

// Fetch returns the raw cart record for the token's user. Without a token
// there is no server cart, so it returns (nil, nil) without a request.
func (c *Client) Fetch(ctx context.Context, token string) ([]domain.Entry, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cart", nil)
	if err != nil {
		return nil, fmt.Errorf("build cart request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

// SubmitQuantity sends the desired absolute quantity for a product, not a
// delta. The backend replies with the full updated cart record.
func (c *Client) SubmitQuantity(ctx context.Context, token, productID string, qty int) ([]domain.Entry, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(domain.Entry{ProductID: productID, Qty: qty})
	if err != nil {
		return nil, fmt.Errorf("encode cart update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cart", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build cart update: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]domain.Entry, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fb failureBody
		_ = json.NewDecoder(resp.Body).Decode(&fb)
		return nil, &APIError{Status: resp.StatusCode, Message: fb.Message}
	}

	var entries []domain.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	return entries, nil
}
