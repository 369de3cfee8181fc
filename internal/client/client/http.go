package client

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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/common"
	"github.com/dmitrijs2005/postkeeper/internal/logging"
)

const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	now     func() time.Time
}

type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.http = hc }
}

func WithHTTPLogger(l logging.Logger) HTTPOption {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for the service rooted at baseURL, e.g.
// "http://localhost:3000/server-api".
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		tokens:  tokens,
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) ListMine(ctx context.Context, page int) (*models.Page, error) {
	if page < 1 {
		page = 1
	}
	hdr := http.Header{}
	hdr.Set(common.PageHeaderName, strconv.Itoa(page))

	var out models.Page
	if err := c.do(ctx, http.MethodGet, c.endpoint("posts", "mine"), hdr, nil, &out); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if out.Posts == nil {
		out.Posts = []models.Post{}
	}
	return &out, nil
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.Post, error) {
	u := c.endpoint("posts", "search")
	u.RawQuery = url.Values{"q": {query}}.Encode()

	var out []models.Post
	if err := c.do(ctx, http.MethodGet, u, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if out == nil {
		out = []models.Post{}
	}
	return out, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrEmptyPostID
	}
	if err := c.do(ctx, http.MethodDelete, c.endpoint("posts", url.PathEscape(id)), nil, nil, nil); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	if err := c.do(ctx, http.MethodPut, c.endpoint("user", "profile"), nil, p, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Close releases idle connections. The client must not be used afterwards.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) endpoint(elem ...string) *url.URL {
	return c.baseURL.JoinPath(elem...)
}

func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, hdr http.Header, in, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if err := checkToken(token, c.now()); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, v := range hdr {
		req.Header[k] = v
	}
	reqID := uuid.NewString()
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug(ctx, "request", "method", method, "path", u.Path, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug(ctx, "unexpected status", "request_id", reqID, "status", resp.StatusCode)
		return mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// mapStatus converts a non-2xx response into one of the package errors.
func mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
		return &StatusError{Code: resp.StatusCode, Message: eb.Error}
	}
	return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
}

// IsUnavailable reports whether err is a network-level failure, including a
// cancelled or expired context.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
