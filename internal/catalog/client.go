// Package catalog implements the read-only PokeAPI lookup used to enrich
// newly created Pokemon.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Record is the subset of a catalog entry the creation flow needs: the
// canonical name, one or two type names, and the ability names.
type Record struct {
	Name      string
	Types     []string
	Abilities []string
}

// Client looks up Pokemon records against a PokeAPI-compatible endpoint.
// The HTTP client carries the configured timeout; a lookup never holds any
// storage transaction open.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a Client from validated config values.
func NewClient(cfg types.Config) *Client {
	return &Client{
		baseURL: cfg.CatalogBaseURL,
		client:  &http.Client{Timeout: cfg.CatalogTimeout},
	}
}

// pokeAPIResponse mirrors the fields of the upstream JSON payload that
// Lookup extracts.
type pokeAPIResponse struct {
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
}

// Lookup resolves a name to its catalog record. A 404 maps to
// ErrCatalogNotFound; transport failures, timeouts, and other upstream
// errors map to ErrCatalogUnavailable so callers can tell retryable from
// not.
func (c *Client) Lookup(ctx context.Context, name string) (*Record, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, types.ErrCatalogNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: upstream status %d", types.ErrCatalogUnavailable, resp.StatusCode)
	}

	var payload pokeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", types.ErrCatalogUnavailable, err)
	}

	rec := &Record{Name: payload.Name}
	for _, t := range payload.Types {
		if t.Type.Name != "" {
			rec.Types = append(rec.Types, t.Type.Name)
		}
	}
	// A Pokemon has at most two types; anything beyond that is upstream
	// noise.
	if len(rec.Types) > 2 {
		rec.Types = rec.Types[:2]
	}
	for _, a := range payload.Abilities {
		if a.Ability.Name != "" {
			rec.Abilities = append(rec.Abilities, a.Ability.Name)
		}
	}
	return rec, nil
}
