// Package colorapi fetches color schemes from The Color API.
package colorapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/balkashynov/swatch/internal/models"
)

const (
	// DefaultBaseURL is the public Color API endpoint
	DefaultBaseURL = "https://www.thecolorapi.com"

	// DefaultMode is the scheme mode requested
	DefaultMode = "analogic"

	// DefaultCount is the number of colors requested
	DefaultCount = 5
)

// Options configures the client. Zero values fall back to the defaults.
type Options struct {
	BaseURL   string
	Mode      string
	Count     int
	Timeout   time.Duration // zero means no timeout
	UserAgent string
	Logger    hclog.Logger
}

// Client requests color schemes. Every Fetch is a single fresh request.
type Client struct {
	baseURL   string
	mode      string
	count     int
	userAgent string
	http      *http.Client
	log       hclog.Logger
}

// NewClient creates a color api client
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		mode:      opts.Mode,
		count:     opts.Count,
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
		log:       opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.mode == "" {
		c.mode = DefaultMode
	}
	if c.count <= 0 {
		c.count = DefaultCount
	}
	if c.userAgent == "" {
		c.userAgent = "swatch"
	}
	if c.log == nil {
		c.log = hclog.NewNullLogger()
	}
	c.log = c.log.Named("colorapi")
	return c
}

// SchemeURL builds the scheme request URL for a seed
func (c *Client) SchemeURL(seed string) string {
	q := url.Values{}
	q.Set("hex", seed)
	q.Set("mode", c.mode)
	q.Set("count", strconv.Itoa(c.count))
	return c.baseURL + "/scheme?" + q.Encode()
}

// Fetch requests a scheme derived from seed and returns its colors in the
// order the api lists them. On any failure the palette is nil and the
// failure is logged before being returned.
func (c *Client) Fetch(ctx context.Context, seed string) (models.Palette, error) {
	palette, err := c.fetch(ctx, seed)
	if err != nil {
		c.log.Warn("palette fetch failed", "seed", seed, "error", err)
		return nil, err
	}
	c.log.Debug("palette fetched", "seed", seed, "colors", len(palette))
	return palette, nil
}

func (c *Client) fetch(ctx context.Context, seed string) (models.Palette, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SchemeURL(seed), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return parseScheme(body)
}
