// Package geo looks up administrative regions (UFs) and their cities from an
// IBGE-style localities API. Read-only; failures are returned to the caller
// without retry.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Regions returns the UF initials (siglas).
func (c *Client) Regions(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/estados?orderBy=nome", nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("regions lookup returned status %d", resp.StatusCode)
	}

	var body []struct {
		Sigla string `json:"sigla"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	regions := make([]string, 0, len(body))
	for _, uf := range body {
		regions = append(regions, uf.Sigla)
	}

	return regions, nil
}

// Cities returns the city names of the given UF.
func (c *Client) Cities(ctx context.Context, uf string) ([]string, error) {
	url := fmt.Sprintf("%v/estados/%v/municipios", c.baseURL, uf)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cities lookup for %v returned status %d", uf, resp.StatusCode)
	}

	var body []struct {
		Nome string `json:"nome"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	cities := make([]string, 0, len(body))
	for _, city := range body {
		cities = append(cities, city.Nome)
	}

	return cities, nil
}
