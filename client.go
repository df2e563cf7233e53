package ols

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/ols/metric"
	"github.com/reoring/ols/model"
	"github.com/reoring/ols/schema"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultUserAgent is sent unless WithUserAgent overrides it.
const DefaultUserAgent = "ols-go"

// Client talks to one OLS deployment. It holds only immutable configuration
// and is safe for concurrent use as far as its Doer is.
type Client struct {
	baseURL   string
	version   APIVersion
	schemas   *model.Schemas
	doer      Doer
	logger    *slog.Logger
	metrics   *metric.Metrics
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIVersion selects the response shapes. The default is V4.
func WithAPIVersion(v APIVersion) Option {
	return func(c *Client) { c.version = v }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithLogger enables one debug record per request.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records request counts and durations.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUserAgent sets the User-Agent header. An empty ua keeps the default.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New returns a client for baseURL. A trailing "/" is added when missing.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   normalizeBaseURL(baseURL),
		version:   V4,
		doer:      http.DefaultClient,
		logger:    slog.New(slog.DiscardHandler),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.schemas, _ = model.SchemasFor(c.version)
	return c
}

func normalizeBaseURL(s string) string {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// APIVersion returns the version selected at construction.
func (c *Client) APIVersion() APIVersion { return c.version }

// Schemas returns the response schema set in use, or nil for an unsupported version.
func (c *Client) Schemas() *model.Schemas { return c.schemas }

// URL joins path (leading "/" stripped) to the base URL and appends query.
func (c *Client) URL(path string, query map[string]string) string {
	u := c.baseURL + strings.TrimLeft(path, "/")
	if len(query) == 0 {
		return u
	}
	vals := url.Values{}
	for k, v := range query {
		vals.Set(k, v)
	}
	return u + "?" + vals.Encode()
}

// request describes one GET against the API.
type request struct {
	op    string
	path  string
	query map[string]string
}

// pick selects a schema from the client's schema set, failing for an
// unsupported API version.
func pick[T any](c *Client, op string, sel func(*model.Schemas) schema.Schema[T]) (schema.Schema[T], error) {
	if c.schemas == nil {
		return nil, usageErr(op, "unsupported API version %q", c.version)
	}
	return sel(c.schemas), nil
}

// get performs the request and validates the body with the selected schema.
func get[T any](ctx context.Context, c *Client, r request, sel func(*model.Schemas) schema.Schema[T]) (T, error) {
	var zero T
	s, err := pick(c, r.op, sel)
	if err != nil {
		return zero, err
	}
	start := time.Now()
	body, u, err := c.do(ctx, r, start)
	if err != nil {
		return zero, err
	}
	v, err := schema.ParseJSON(ctx, s, body)
	if err != nil {
		c.metrics.Observe(r.op, metric.OutcomeInvalidResponse, time.Since(start))
		iss, _ := schema.AsIssues(err)
		return zero, &ValidationError{Op: r.op, URL: u, Issues: iss}
	}
	c.metrics.Observe(r.op, metric.OutcomeOK, time.Since(start))
	return v, nil
}

// do issues exactly one GET and returns the body of a 2xx response. Failed
// requests are recorded in the metrics here; successful ones by the caller.
func (c *Client) do(ctx context.Context, r request, start time.Time) ([]byte, string, error) {
	u := c.URL(r.path, r.query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, u, usageErr(r.op, "build request: %v", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.doer.Do(req)
	if err != nil {
		c.metrics.Observe(r.op, metric.OutcomeTransportError, time.Since(start))
		c.logRequest(ctx, r.op, u, reqID, 0, start)
		return nil, u, fmt.Errorf("ols: %s: %w", r.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.logRequest(ctx, r.op, u, reqID, resp.StatusCode, start)
	if err != nil {
		c.metrics.Observe(r.op, metric.OutcomeTransportError, time.Since(start))
		return nil, u, fmt.Errorf("ols: %s: read body: %w", r.op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.Observe(r.op, metric.OutcomeHTTPError, time.Since(start))
		return nil, u, newHTTPError(ctx, resp.StatusCode, u, body)
	}
	return body, u, nil
}

func newHTTPError(ctx context.Context, status int, u string, body []byte) *HTTPError {
	he := &HTTPError{StatusCode: status, URL: u, Body: body}
	if detail, err := schema.ParseJSON(ctx, model.ErrorSchema(), body); err == nil {
		he.Detail = &detail
	}
	return he
}

func (c *Client) logRequest(ctx context.Context, op, u, reqID string, status int, start time.Time) {
	c.logger.DebugContext(ctx, "ols request",
		"op", op,
		"url", u,
		"status", status,
		"duration", time.Since(start),
		"request_id", reqID)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

// requireArgs returns a UsageError naming the first empty value. Arguments are
// name/value pairs.
func requireArgs(op string, kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if strings.TrimSpace(kv[i+1]) == "" {
			return usageErr(op, "%s is required", kv[i])
		}
	}
	return nil
}

// Schema selectors passed to get.
var (
	apiInfoSchema        = func(s *model.Schemas) schema.Schema[model.ApiInfo] { return s.APIInfo }
	ontologySchema       = func(s *model.Schemas) schema.Schema[model.OntologyItem] { return s.Ontology }
	ontologyListSchema   = func(s *model.Schemas) schema.Schema[model.OntologyList] { return s.OntologyList }
	termSchema           = func(s *model.Schemas) schema.Schema[model.Term] { return s.Term }
	termListSchema       = func(s *model.Schemas) schema.Schema[model.TermList] { return s.TermList }
	definingSchema       = func(s *model.Schemas) schema.Schema[model.DefiningOntologyTerms] { return s.DefiningOntology }
	searchSchema         = func(s *model.Schemas) schema.Schema[model.SearchResponse] { return s.Search }
	propertySchema       = func(s *model.Schemas) schema.Schema[model.Property] { return s.Property }
	propertyListSchema   = func(s *model.Schemas) schema.Schema[model.PropertyList] { return s.PropertyList }
	individualSchema     = func(s *model.Schemas) schema.Schema[model.Individual] { return s.Individual }
	individualListSchema = func(s *model.Schemas) schema.Schema[model.IndividualList] { return s.IndividualList }
)
