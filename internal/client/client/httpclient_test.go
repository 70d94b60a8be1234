package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/codelog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	values map[tokens.Slot]string
	err    error
	calls  int
}

func (f *fakeTokens) Get(_ context.Context, slot tokens.Slot) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.values[slot], nil
}

type captured struct {
	method string
	path   string
	query  string
	header http.Header
}

func captureServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.RawQuery
		c.header = r.Header.Clone()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func TestHTTPClient_AttachesStoredAccessToken(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK, `{"ok":true}`)
	ft := &fakeTokens{values: map[tokens.Slot]string{tokens.SlotAccess: "acc-1"}}

	c := NewHTTPClient(srv.URL+"/api/", ft)
	c.newRequestID = func() string { return "req-1" }

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/me/streaks"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "/api/me/streaks", got.path)
	assert.Equal(t, "Bearer acc-1", got.header.Get(common.AuthorizationHeaderName))
	assert.Equal(t, "req-1", got.header.Get(common.RequestIDHeaderName))
	assert.Equal(t, 1, ft.calls)
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK, `{}`)
	c := NewHTTPClient(srv.URL, &fakeTokens{})

	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "login", Body: map[string]string{"a": "b"}})
	require.NoError(t, err)

	assert.Empty(t, got.header.Get(common.AuthorizationHeaderName))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.NotEmpty(t, got.header.Get(common.RequestIDHeaderName))
}

func TestHTTPClient_BearerOverride(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK, `{}`)
	ft := &fakeTokens{values: map[tokens.Slot]string{tokens.SlotAccess: "acc"}}
	c := NewHTTPClient(srv.URL, ft)

	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/refresh", Bearer: "ref"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer ref", got.header.Get(common.AuthorizationHeaderName))
	assert.Equal(t, 0, ft.calls)
}

func TestHTTPClient_QueryAndStatusPassThrough(t *testing.T) {
	srv, got := captureServer(t, http.StatusUnauthorized, `{"error":"nope"}`)
	c := NewHTTPClient(srv.URL, nil)

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/feed/get_posts",
		Query:  map[string][]string{"page": {"3"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "page=3", got.query)
}

func TestHTTPClient_TokenStoreError(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK, `{}`)
	boom := errors.New("db locked")
	c := NewHTTPClient(srv.URL, &fakeTokens{err: boom})

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, got.method, "request must not be sent")
}

func TestHTTPClient_TransportErrorReturnedUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, nil, WithTimeout(time.Second))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Options(t *testing.T) {
	hc := &http.Client{}
	c := NewHTTPClient("http://x/", nil, WithHTTPClient(hc), WithTimeout(3*time.Second))
	assert.Same(t, hc, c.http)
	assert.Equal(t, 3*time.Second, hc.Timeout)
	assert.Equal(t, "http://x", c.BaseURL())
}
