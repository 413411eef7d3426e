package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

// Client is the Fetcher over the search API endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, q string, page, limit int) ([]catalog.ProductSummary, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	return c.get(ctx, params, page, limit)
}

func (c *Client) ByEntity(ctx context.Context, entityID int64, page, limit int) ([]catalog.ProductSummary, error) {
	params := url.Values{}
	params.Set("entityid", strconv.FormatInt(entityID, 10))
	return c.get(ctx, params, page, limit)
}

func (c *Client) get(ctx context.Context, params url.Values, page, limit int) ([]catalog.ProductSummary, error) {
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/products/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed: %s", resp.Status)
	}

	var items []catalog.ProductSummary
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return items, nil
}
