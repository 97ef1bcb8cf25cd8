// Package maps wraps the mapping provider's geocoding, directions, and
// places APIs. Every lookup degrades to canned defaults when the key is
// missing or the provider is unreachable, so plan generation never fails on
// this layer.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com"

// KeyFunc resolves the API key at call time, so a key entered at runtime and
// cached in the store takes effect without a restart.
type KeyFunc func(ctx context.Context) string

type Client struct {
	httpClient *http.Client
	baseURL    string
	key        KeyFunc
	timeout    time.Duration
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint. Tests use this to
// target an httptest server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithTimeout bounds each individual provider call. Defaults to 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func NewClient(key KeyFunc, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		key:        key,
		timeout:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// ReverseGeocode resolves coordinates to a "City, Country" address. On any
// failure it returns the formatted coordinates alongside the error so the
// caller can still show something usable.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	fallback := fmt.Sprintf("%.4f, %.4f", lat, lng)

	key := c.key(ctx)
	if key == "" {
		return fallback, errors.New("maps: no API key configured")
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", key)

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return fallback, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return fallback, fmt.Errorf("maps: geocoding API error: %s", resp.Status)
	}

	var city, country string
	for _, component := range resp.Results[0].AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				city = component.LongName
			case "country":
				country = component.LongName
			}
		}
	}
	if city != "" && country != "" {
		return city + ", " + country, nil
	}
	return resp.Results[0].FormattedAddress, nil
}

// geocode resolves a free-form address to coordinates.
func (c *Client) geocode(ctx context.Context, address, key string) (lat, lng float64, err error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", key)

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return 0, 0, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return 0, 0, fmt.Errorf("maps: geocoding API error: %s", resp.Status)
	}
	loc := resp.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps: %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
