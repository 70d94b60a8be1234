package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/codelog/internal/common"
	"github.com/google/uuid"
)

// TokenReader is the read side of the Token Store.
type TokenReader interface {
	Get(ctx context.Context, slot tokens.Slot) (string, error)
}

// Request describes one backend call. Path is relative to the client's
// base URL. Body, when non-nil, is sent as JSON. Bearer overrides the
// stored access token for this request only.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Bearer string
}

// Response is the raw backend answer. The status code is not interpreted.
type Response struct {
	Status    int
	Body      []byte
	RequestID string
}

// HTTPClient sends requests to one backend base URL and attaches the stored
// access token as a bearer credential. It never retries and never looks at
// status codes; transport errors are returned as they are.
type HTTPClient struct {
	baseURL      string
	tokens       TokenReader
	http         *http.Client
	newRequestID func() string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func NewHTTPClient(baseURL string, tokens TokenReader, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		tokens:       tokens,
		http:         &http.Client{Timeout: 10 * time.Second},
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) bearer(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.tokens == nil {
		return "", nil
	}
	token, err := c.tokens.Get(ctx, tokens.SlotAccess)
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	return token, nil
}

func (c *HTTPClient) buildURL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do sends r and returns the full response body with its status code.
func (c *HTTPClient) Do(ctx context.Context, r Request) (*Response, error) {
	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.buildURL(r.Path, r.Query), body)
	if err != nil {
		return nil, err
	}

	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	token, err := c.bearer(ctx, r.Bearer)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{Status: resp.StatusCode, Body: data, RequestID: requestID}, nil
}
