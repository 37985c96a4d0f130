// Package beercatalog implements the BeerCatalog port against the remote
// beer service's HTTP API, with an optional Redis read-through cache.
package beercatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/pkg/errs"
)

const beerUPCPath = "/api/v1/beerUpc/"

// Client looks up beers by UPC over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the beer service at baseURL
// (scheme and host, no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetByUPC fetches one catalog entry. A 404 from the beer service surfaces
// as errs.ObjectNotFoundError.
func (c *Client) GetByUPC(ctx context.Context, upc string) (*beer.Beer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+beerUPCPath+upc, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("beer", upc)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("beer service returned status %d for upc %s", resp.StatusCode, upc)
	}

	var entry beer.Beer
	if err = json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decode beer service response: %w", err)
	}

	return &entry, nil
}
