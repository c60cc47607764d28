// Package imagegen calls the external product-image generation service. The
// core stores whatever reference the service returns, verbatim; failures are
// returned to the caller, never swallowed, and never retried here.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
}

type generateResponse struct {
	Image string `json:"image"`
}

// Generate asks the service for a product image and returns its reference.
func (c *Client) Generate(ctx context.Context, name, description string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("imagegen: no service configured")
	}

	body, err := json.Marshal(generateRequest{ProductName: name, ProductDescription: description})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagegen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("imagegen: service returned %d: %s", resp.StatusCode, msg)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("imagegen: bad response: %w", err)
	}
	if out.Image == "" {
		return "", fmt.Errorf("imagegen: service returned no image")
	}
	return out.Image, nil
}
