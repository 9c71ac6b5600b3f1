// Package eastmoney implements the Eastmoney push2 quote API: the paginated
// full-market listing and the per-symbol detail endpoint.
package eastmoney

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultListURL   = "https://push2.eastmoney.com/api/qt/clist/get"
	defaultDetailURL = "https://push2.eastmoney.com/api/qt/stock/get"
	defaultToken     = "bd1d9ddb04089700cf9c27f6f7426281"

	// Main board (SH/SZ) plus STAR and ChiNext growth boards.
	defaultSegmentFilter = "m:0 t:6,m:0 t:80,m:1 t:2,m:1 t:23"

	defaultTimeout = 10 * time.Second
)

// Listing fields: f12 code, f14 name, f15 price, f3 pct change, f10 volume
// ratio, f8 turnover rate. Detail adds f191 bid/ask imbalance and f137
// principal net inflow.
const (
	listFields   = "f12,f14,f15,f3,f10,f8"
	detailFields = "f57,f58,f43,f170,f50,f168,f191,f137"
	sortField    = "f3"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://quote.eastmoney.com/"
)

var (
	// ErrUpstream covers network failures, timeouts and non-2xx statuses.
	ErrUpstream = errors.New("eastmoney: upstream unavailable")
	// ErrMalformed covers responses missing the expected envelope.
	ErrMalformed = errors.New("eastmoney: malformed response")
)

// Config carries the endpoint addresses and fixed request parameters. Zero
// fields fall back to the production defaults, which keeps the client
// testable against fake transports.
type Config struct {
	ListURL       string
	DetailURL     string
	Token         string
	SegmentFilter string
	Timeout       time.Duration
}

func (c Config) withDefaults() Config {
	if c.ListURL == "" {
		c.ListURL = defaultListURL
	}
	if c.DetailURL == "" {
		c.DetailURL = defaultDetailURL
	}
	if c.Token == "" {
		c.Token = defaultToken
	}
	if c.SegmentFilter == "" {
		c.SegmentFilter = defaultSegmentFilter
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Client is safe for concurrent use; all requests share one connection pool.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logrus.Logger
}

func NewClient(cfg Config, log *logrus.Logger) *Client {
	cfg = cfg.withDefaults()
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// get issues one GET with browser-like headers. The transport negotiates
// gzip on its own and decompresses transparently.
func (c *Client) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	return body, nil
}
