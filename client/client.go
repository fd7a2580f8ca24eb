package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the endpoint of a correction service running locally.
const DefaultEndpoint = "http://localhost:8089/api/gec"

// DefaultTimeout is the timeout of the default HTTP client.
const DefaultTimeout = 30 * time.Second

const maxExcerpt = 512 // bytes of a failed response body kept for an error message

// ErrCheckFailed is the single error condition of a correction request.
// Use errors.Is(err, ErrCheckFailed) to test for it.
var ErrCheckFailed = errors.New("correction request failed")

// Error describes a failed correction request.
type Error struct {
	Status  int    // HTTP status code, 0 if no response has been received
	Excerpt string // start of the response body, if any
	Err     error  // underlying error, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(ErrCheckFailed.Error())
	if e.Status != 0 {
		fmt.Fprintf(&b, ": HTTP %d", e.Status)
	}
	if e.Excerpt != "" {
		fmt.Fprintf(&b, ": %s", e.Excerpt)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrCheckFailed) true for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrCheckFailed
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client sends texts to a correction service. A Client is safe for
// concurrent use.
type Client struct {
	endpoint  string
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client to use.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the timeout for a request, including reading the response.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithUserAgent sets the User-Agent header of requests. An empty ua keeps
// the default.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for a correction service. If endpoint is empty,
// DefaultEndpoint is used.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: "gecview",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Check sends text to the correction service and returns its response.
// Exactly one request is sent. Any failure results in an *Error.
func (c *Client) Check(ctx context.Context, text string) (*Response, error) {
	body, err := marshalNoEscape(Request{Text: text})
	if err != nil {
		return nil, &Error{Err: err}
	}
	req, err := c.newPOST(ctx, body)
	if err != nil {
		return nil, &Error{Err: err}
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		tracer().Errorf("correction request to %s failed: %v", c.endpoint, err)
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tracer().Errorf("correction service responded with HTTP %d", resp.StatusCode)
		return nil, &Error{Status: resp.StatusCode, Excerpt: excerpt(data)}
	}
	result, err := DecodeResponse(data)
	if err != nil {
		tracer().Errorf("cannot decode response of correction service: %v", err)
		return nil, &Error{Status: resp.StatusCode, Excerpt: excerpt(data), Err: err}
	}
	tracer().Debugf("correction service: %d markups, service time %.3fs, round trip %v",
		len(result.TextMarkups), result.ServiceTime, time.Since(start))
	tracer().Debugf("correction service: %d characters, %d with errors, profanity=%v",
		result.CharacterCount, result.ErrorCharacterCount, result.ContainsProfanity)
	return result, nil
}

// Ping checks if the service is up, using its health check endpoint
// "/healthCheck" on the same host.
func (c *Client) Ping(ctx context.Context) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return &Error{Err: err}
	}
	u.Path, u.RawQuery = "/healthCheck", ""
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &Error{Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Err: err}
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxExcerpt))
	if resp.StatusCode != http.StatusOK {
		return &Error{Status: resp.StatusCode, Excerpt: excerpt(data)}
	}
	return nil
}

// newPOST builds a pre-populated request.
func (c *Client) newPOST(ctx context.Context, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func excerpt(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxExcerpt {
		s = strings.ToValidUTF8(s[:maxExcerpt], "") + "…"
	}
	return s
}
