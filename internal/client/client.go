// Package client is the registry API consumed by the registration form:
// the item catalog and the single point-creation call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coleta-app/coleta-api/internal/domain"
)

// CreatePointPayload is the flat creation body assembled from the draft.
type CreatePointPayload struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	UF        string  `json:"uf"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Items     []uint  `json:"items"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *Client) Items(ctx context.Context) ([]domain.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/items", nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("items fetch returned status %d", resp.StatusCode)
	}

	var items []domain.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	return items, nil
}

// CreatePoint performs the one outbound create call. Error responses are
// decoded and surfaced as an explicit error instead of propagating
// unexamined.
func (c *Client) CreatePoint(ctx context.Context, payload CreatePointPayload) (domain.Point, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Point{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/points", bytes.NewReader(body))
	if err != nil {
		return domain.Point{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Point{}, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
			return domain.Point{}, fmt.Errorf("point creation returned status %d", resp.StatusCode)
		}

		return domain.Point{}, fmt.Errorf("point creation failed: %v", envelope.Message)
	}

	var created domain.Point
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.Point{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return created, nil
}
