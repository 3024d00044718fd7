// Package firecrawl provides a docscrape.Scraper backed by the Firecrawl
// scrape API.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout is the default client-side timeout for one scrape request.
// Rendering on the remote side is slow, so this is well above a plain fetch.
const DefaultTimeout = 60 * time.Second

// scrapePath is appended to the base URL for every request.
const scrapePath = "/v1/scrape"

// maxErrorBody caps how much of a failed response body ends up in errors.
const maxErrorBody = 4 << 10

// Ensure Client implements docscrape.Scraper at compile time.
var _ docscrape.Scraper = (*Client)(nil)

// Client calls the Firecrawl scrape endpoint.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	timeout  time.Duration
	limiter  *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// WithTimeout sets the timeout for scrape requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// WithRateLimit caps requests to rps per second with no bursting.
// A non-positive rps leaves requests unlimited.
func WithRateLimit(rps float64) Option {
	return func(cl *Client) {
		if rps <= 0 {
			cl.limiter = nil
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client for the API at baseURL authenticated
// with apiKey. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		endpoint: strings.TrimSuffix(baseURL, "/") + scrapePath,
		apiKey:   apiKey,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Endpoint returns the full scrape URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Scrape requests the given formats of the page at url.
func (c *Client) Scrape(ctx context.Context, url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(newScrapeRequest(url, formats, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var sr scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !sr.Success {
		if sr.Error != "" {
			return nil, fmt.Errorf("API reported failure: %s", sr.Error)
		}
		return nil, fmt.Errorf("API reported failure")
	}

	return sr.Data.result(), nil
}

func newScrapeRequest(url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) *scrapeRequest {
	req := &scrapeRequest{
		URL:     url,
		Formats: make([]string, len(formats)),
	}
	for i, f := range formats {
		req.Formats[i] = string(f)
	}

	if opts == nil {
		return req
	}

	req.OnlyMainContent = opts.OnlyMainContent
	req.IncludeTags = opts.IncludeTags
	req.ExcludeTags = opts.ExcludeTags
	req.Headers = opts.Headers
	req.WaitFor = opts.WaitFor
	req.Mobile = opts.Mobile
	req.SkipTLSVerification = opts.SkipTLSVerification
	req.Timeout = opts.Timeout
	req.RemoveBase64Images = opts.RemoveBase64Images
	req.BlockAds = opts.BlockAds
	if opts.Location != nil {
		req.Location = &location{
			Country:   opts.Location.Country,
			Languages: opts.Location.Languages,
		}
	}
	return req
}

func (d *scrapeData) result() *docscrape.ScrapeResult {
	return &docscrape.ScrapeResult{
		Markdown: d.Markdown,
		Links:    d.Links,
		Metadata: docscrape.Metadata{
			Title:       d.Metadata.Title,
			Description: d.Metadata.Description,
			Language:    d.Metadata.Language,
			SourceURL:   d.Metadata.SourceURL,
			StatusCode:  d.Metadata.StatusCode,
			Error:       d.Metadata.Error,
		},
		Warning: d.Warning,
	}
}
