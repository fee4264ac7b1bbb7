// Package geoloc looks up the coarse location of the client from its IP address.
package geoloc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fortio.org/log"
	"github.com/golang/geo/s2"
)

const (
	DefaultURL     = "https://ipapi.co/json/"
	DefaultTimeout = 5 * time.Second
)

var (
	ErrNoLocation = errors.New("no location in response")
	ErrStatus     = errors.New("unexpected status")
)

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	Enabled bool          `yaml:"enabled"`
}

func DefaultConfig() Config {
	return Config{
		URL:     DefaultURL,
		Timeout: DefaultTimeout,
		Enabled: true,
	}
}

type response struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		url:        cfg.URL,
		timeout:    cfg.Timeout,
		httpClient: http.DefaultClient,
	}
}

// Locate returns the location of the client.
// Missing latitude is reported as the equator.
func (c *Client) Locate(ctx context.Context) (s2.LatLng, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return s2.LatLng{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s2.LatLng{}, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return s2.LatLng{}, fmt.Errorf("geolocation response: %w", err)
	}
	if r.Error {
		return s2.LatLng{}, fmt.Errorf("%w: %s", ErrNoLocation, r.Reason)
	}
	if r.Longitude == nil {
		return s2.LatLng{}, ErrNoLocation
	}
	var lat float64
	if r.Latitude != nil {
		lat = *r.Latitude
	}
	ll := s2.LatLngFromDegrees(lat, *r.Longitude)
	if !ll.IsValid() {
		return s2.LatLng{}, fmt.Errorf("%w: out of range %v", ErrNoLocation, ll)
	}
	log.Debugf("Located at %v", ll)
	return ll, nil
}
