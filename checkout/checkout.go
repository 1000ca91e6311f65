// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/hexaco-protocol/models"
)

var (
	// ErrUnknownTier is returned for a tier with no price mapping. The check
	// runs before any network call.
	ErrUnknownTier = errors.New("invalid tier")

	// ErrNotConfigured is returned when no secret key is set.
	ErrNotConfigured = errors.New("checkout is not configured")
)

// Config holds the checkout collaborator settings.
type Config struct {
	SecretKey string
	// BaseURL defaults to the Stripe API; tests point it at a local server.
	BaseURL string
	// Origin is the front-end origin used to build redirect URLs.
	Origin string
	// Prices maps tier names to hosted-checkout price IDs.
	Prices  map[string]string
	Timeout time.Duration
}

// Client creates hosted checkout sessions for a selected tier.
type Client struct {
	secretKey  string
	baseURL    string
	origin     string
	prices     map[string]string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.stripe.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		secretKey: strings.TrimSpace(cfg.SecretKey),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		origin:    strings.TrimRight(cfg.Origin, "/"),
		prices:    cfg.Prices,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession creates a one-time payment checkout session for tier and
// returns the redirect URL. An empty tier defaults to premium. A tier with
// no price mapping fails with ErrUnknownTier before anything leaves the
// process. The success URL carries paid=true&tier=<tier> so the front end
// can resume directly into the premium view.
func (c *Client) CreateSession(ctx context.Context, tier string) (string, error) {
	if tier == "" {
		tier = models.TierPremium
	}
	priceID, ok := c.prices[tier]
	if !ok || priceID == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}
	if c.secretKey == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "payment")
	form.Set("success_url", fmt.Sprintf("%s/?paid=true&tier=%s", c.origin, tier))
	form.Set("cancel_url", fmt.Sprintf("%s/?cancelled=true", c.origin))
	form.Set("metadata[tier]", tier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("checkout session creation failed: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("checkout session creation failed: status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode checkout response: %w", err)
	}
	if session.URL == "" {
		return "", errors.New("checkout response missing redirect URL")
	}
	return session.URL, nil
}
