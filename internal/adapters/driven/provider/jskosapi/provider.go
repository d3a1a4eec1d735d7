// Package jskosapi serves a remote mapping registry over the JSKOS API.
//
// Mappings are read from GET {base}/mappings, created with POST
// {base}/mappings, updated with PUT {uri} and removed with DELETE {uri}.
// Requests are rate limited per provider; a configured token is sent as a
// bearer token on every request.
package jskosapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.MappingProvider = (*Provider)(nil)

// DefaultTimeout is the HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is quoted in errors.
const maxErrorBody = 512

// Config configures a remote registry client.
type Config struct {
	// BaseURL is the API root, e.g. https://coli-conc.gbv.de/api.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// RequestsPerSecond and Burst tune the rate limiter; zero uses defaults.
	RequestsPerSecond float64
	Burst             int

	// HTTPClient is the base client; nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// Provider talks to one JSKOS API server.
type Provider struct {
	baseURL string
	client  *http.Client
	limiter *rateLimiter
}

// New creates a provider. BaseURL must be an absolute http(s) URL.
func New(cfg Config) (*Provider, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: registry base URL %q", domain.ErrInvalidInput, cfg.BaseURL)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		client = oauth2.NewClient(ctx, ts)
	} else {
		copied := *client
		client = &copied
	}
	if client.Timeout == 0 {
		client.Timeout = DefaultTimeout
	}

	return &Provider{
		baseURL: base.String(),
		client:  client,
		limiter: newRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}, nil
}

// GetMappings queries the registry's mappings endpoint.
func (p *Provider) GetMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	endpoint := p.mappingsURL()
	if params := queryParams(query); len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var mappings []domain.Mapping
	if err := p.do(ctx, http.MethodGet, endpoint, nil, &mappings); err != nil {
		return nil, err
	}
	return normalize(mappings), nil
}

// GetAllMappings falls back to the selected concepts when the query names
// none, matching them on either side.
func (p *Provider) GetAllMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	query = query.WithSelection()
	if query.From == "" && query.To == "" && query.Identifier == "" {
		return []domain.Mapping{}, nil
	}
	return p.GetMappings(ctx, query)
}

// SaveMappings puts mappings whose URI lies under this registry's mappings
// endpoint and posts all others as new records. Foreign URIs, such as those
// of local or other registries' mappings, are dropped before posting.
func (p *Provider) SaveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	saved := make([]domain.Mapping, 0, len(mappings))
	for _, mapping := range mappings {
		method, endpoint := http.MethodPost, p.mappingsURL()
		if p.owns(mapping.URI) {
			method, endpoint = http.MethodPut, mapping.URI
		} else if mapping.URI != "" {
			logger.Debug("mapping %s is not from %s, saving as new", mapping.URI, p.baseURL)
			mapping = mapping.Clone()
			mapping.URI = ""
		}

		var stored domain.Mapping
		if err := p.do(ctx, method, endpoint, mapping, &stored); err != nil {
			return nil, err
		}
		saved = append(saved, normalize([]domain.Mapping{stored})...)
	}
	return saved, nil
}

// RemoveMappings deletes mappings by URI and returns the records as they were
// stored. Mappings without a URI of this registry or unknown to the server
// are skipped.
func (p *Provider) RemoveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	removed := make([]domain.Mapping, 0, len(mappings))
	for _, mapping := range mappings {
		if !p.owns(mapping.URI) {
			if mapping.URI != "" {
				logger.Debug("mapping %s is not from %s, skipping removal", mapping.URI, p.baseURL)
			}
			continue
		}

		var stored domain.Mapping
		err := p.do(ctx, http.MethodGet, mapping.URI, nil, &stored)
		if err == nil {
			err = p.do(ctx, http.MethodDelete, mapping.URI, nil, nil)
		}
		if isStatus(err, http.StatusNotFound) {
			logger.Debug("mapping %s not found on %s", mapping.URI, p.baseURL)
			continue
		}
		if err != nil {
			return nil, err
		}
		if stored.URI == "" {
			stored.URI = mapping.URI
		}
		removed = append(removed, normalize([]domain.Mapping{stored})...)
	}
	return removed, nil
}

func (p *Provider) mappingsURL() string {
	return p.baseURL + "/mappings"
}

// owns reports whether uri names a mapping record of this registry.
func (p *Provider) owns(uri string) bool {
	prefix := p.mappingsURL() + "/"
	return len(uri) > len(prefix) && strings.HasPrefix(uri, prefix)
}

// statusError is returned for non-2xx responses.
type statusError struct {
	method string
	url    string
	code   int
	body   string
}

func (e *statusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.method, e.url, e.code, http.StatusText(e.code))
	if e.body != "" {
		msg += ": " + e.body
	}
	return msg
}

// Unwrap makes every status error match domain.ErrRegistryUnavailable.
func (e *statusError) Unwrap() error {
	return domain.ErrRegistryUnavailable
}

func isStatus(err error, code int) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == code
}

// do performs one JSON request. A nil out discards the response body.
func (p *Provider) do(ctx context.Context, method, endpoint string, in, out any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, endpoint)
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		p.limiter.Backoff(retryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &statusError{
			method: method,
			url:    endpoint,
			code:   resp.StatusCode,
			body:   strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func queryParams(q domain.MappingQuery) url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("from", q.From)
	set("to", q.To)
	set("fromScheme", q.FromScheme)
	set("toScheme", q.ToScheme)
	set("direction", string(q.Direction))
	set("mode", string(q.Mode))
	set("identifier", q.Identifier)
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

func normalize(mappings []domain.Mapping) []domain.Mapping {
	out := make([]domain.Mapping, len(mappings))
	for i, m := range mappings {
		if m.From.MemberSet == nil {
			m.From.MemberSet = []domain.Concept{}
		}
		if m.To.MemberSet == nil {
			m.To.MemberSet = []domain.Concept{}
		}
		m.Local = false
		out[i] = m
	}
	return out
}
