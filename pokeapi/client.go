// Package pokeapi is a read-only client for the upstream pokemon catalog.
// Responses are passed through as raw JSON; nothing is cached or persisted.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/padraicbc/pokedex/apperror"
)

// DefaultLimit is the page size used when the caller doesn't ask for one.
const DefaultLimit = 100

// maxRandomID caps random opponent selection. The upstream id sequence
// runs 0..1010 and then jumps to 10001, so ids above 1010 are excluded
// rather than 404ing most random picks.
const maxRandomID = 1010

// Client calls the upstream catalog over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for baseURL. Pass nil to use a default client with
// a 10 second timeout; upstream calls have no retry logic, a slow catalog
// just fails the one request.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// List fetches one page of the catalog listing. limit <= 0 falls back to
// DefaultLimit.
func (c *Client) List(ctx context.Context, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return c.get(ctx, fmt.Sprintf("%s?limit=%d", c.baseURL, limit), "pokemon")
}

// GetByName fetches a single pokemon by name.
func (c *Client) GetByName(ctx context.Context, name string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(name)), name)
}

// GetByID fetches a single pokemon by numeric id.
func (c *Client) GetByID(ctx context.Context, id int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d", c.baseURL, id), fmt.Sprintf("%d", id))
}

// Random fetches a uniformly chosen pokemon with id in [0, maxRandomID].
func (c *Client) Random(ctx context.Context) (json.RawMessage, error) {
	return c.GetByID(ctx, randomID())
}

func randomID() int {
	return rand.IntN(maxRandomID + 1)
}

func (c *Client) get(ctx context.Context, rawURL, ref string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperror.NotFound("pokemon", ref)
	case resp.StatusCode != http.StatusOK:
		return nil, apperror.Internal(fmt.Errorf("upstream catalog: unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return json.RawMessage(body), nil
}
