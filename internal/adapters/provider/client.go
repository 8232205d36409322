package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/okian/beastscore/pkg/logger"
	"github.com/okian/beastscore/pkg/metrics"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 16 << 20
)

// HTTPDoer is the subset of *http.Client the clients need.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option applies a configuration option to a client.
type Option func(*base)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc HTTPDoer) Option {
	return func(b *base) {
		if hc != nil {
			b.hc = hc
		}
	}
}

// WithBaseURL overrides the endpoint root.
func WithBaseURL(u string) Option {
	return func(b *base) {
		if u != "" {
			b.baseURL = u
		}
	}
}

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) Option {
	return func(b *base) {
		b.apiKey = key
	}
}

// WithChain sets the chain selector: a numeric chain id for explorers, a
// chain name for Moralis.
func WithChain(chain string) Option {
	return func(b *base) {
		if chain != "" {
			b.chain = chain
		}
	}
}

// WithRequiredAPIKey makes calls fail with ErrMissingCredentials when no key
// is configured.
func WithRequiredAPIKey() Option {
	return func(b *base) {
		b.requireKey = true
	}
}

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.log = l
		}
	}
}

// base holds what every client shares.
type base struct {
	name       string
	baseURL    string
	apiKey     string
	chain      string
	requireKey bool
	hc         HTTPDoer
	log        logger.Logger
}

func newBase(name, baseURL string, opts []Option) base {
	b := base{
		name:    name,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Name returns the provider label used in logs, metrics and sources.
func (b *base) Name() string { return b.name }

func (b *base) checkCredentials() error {
	if b.requireKey && b.apiKey == "" {
		return fmt.Errorf("%s: %w", b.name, ErrMissingCredentials)
	}
	return nil
}

// getJSON performs a GET and decodes the body into out. Transport errors and
// non-2xx statuses map to ErrUnavailable; undecodable bodies to ErrMalformed.
func (b *base) getJSON(ctx context.Context, endpoint string, query url.Values, header http.Header, family string, out any) error {
	u := endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", b.name, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	metrics.RecordProviderPage(b.name, family)
	resp, err := b.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", b.name, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return fmt.Errorf("%s: %w: http %d: %s", b.name, ErrUnavailable, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", b.name, ErrMalformed, err)
	}
	return nil
}
