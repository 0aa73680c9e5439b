// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
	"golang.org/x/net/publicsuffix"
)

type ClientOption func(c *Client)

// WithHeader adds header to every request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		c.defaults = append(c.defaults, WithRequestHeader(header))
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.hc.Transport = transport
	}
}

type RequestOption func(r *http.Request)

func WithRequestHeader(header http.Header) RequestOption {
	return func(r *http.Request) {
		for k, values := range header {
			for _, v := range values {
				r.Header.Add(k, v)
			}
		}
	}
}

// WithRequestID sends id instead of a random request id.
func WithRequestID(id string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(api.HeaderRequestID, id)
	}
}

// Client talks to a `devtools serve` instance.
type Client struct {
	hc       *http.Client
	baseURL  string
	defaults []RequestOption
	logger   logr.Logger
}

// NewClient creates a client for the server at baseURL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string, logger logr.Logger, opts ...ClientOption) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server url: %v", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	c := &Client{
		hc:      &http.Client{Jar: jar},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.WithName("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends a request and turns responses with status 400 and above into
// *HTTPError.
func (c *Client) Do(ctx context.Context, method, path, contentType string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(api.HeaderRequestID, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, opt := range append(c.defaults, opts...) {
		opt(req)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info("response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"requestID", req.Header.Get(api.HeaderRequestID),
	)
	if resp.StatusCode >= 400 {
		return nil, NewHTTPError(resp)
	}
	return resp, nil
}

func decodeJSON[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, api.CTJSON) {
		return nil, fmt.Errorf("unexpected content type %q", ct)
	}
	obj := new(T)
	if err := json.NewDecoder(resp.Body).Decode(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func postJSON[T any](ctx context.Context, c *Client, path string, body interface{}, opts []RequestOption) (*T, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(ctx, http.MethodPost, path, api.CTJSON, bytes.NewReader(b), opts...)
	if err != nil {
		return nil, err
	}
	return decodeJSON[T](resp)
}

func (c *Client) Tools(ctx context.Context, opts ...RequestOption) (*payload.ToolsResponse, error) {
	resp, err := c.Do(ctx, http.MethodGet, api.PathTools, "", nil, opts...)
	if err != nil {
		return nil, err
	}
	return decodeJSON[payload.ToolsResponse](resp)
}

func (c *Client) Diff(ctx context.Context, req *payload.DiffRequest, opts ...RequestOption) (*payload.DiffResponse, error) {
	return postJSON[payload.DiffResponse](ctx, c, api.PathDiff, req, opts)
}

func (c *Client) Convert(ctx context.Context, req *payload.ConvertRequest, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathConvert, req, opts)
}

func (c *Client) PrettifyJSON(ctx context.Context, req *payload.JSONRequest, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathJSON, req, opts)
}

func (c *Client) PullByRegex(ctx context.Context, req *payload.RegexRequest, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathRegex, req, opts)
}

func (c *Client) Base64Encode(ctx context.Context, text string, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathBase64Encode, &payload.TextRequest{Text: text}, opts)
}

func (c *Client) Base64Decode(ctx context.Context, text string, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathBase64Decode, &payload.TextRequest{Text: text}, opts)
}

func (c *Client) URLEncode(ctx context.Context, text string, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathURLEncode, &payload.TextRequest{Text: text}, opts)
}

func (c *Client) URLDecode(ctx context.Context, text string, opts ...RequestOption) (*payload.TextResponse, error) {
	return postJSON[payload.TextResponse](ctx, c, api.PathURLDecode, &payload.TextRequest{Text: text}, opts)
}

// DataURI uploads content as is. name only serves to guess the media type.
func (c *Client) DataURI(ctx context.Context, name string, content []byte, opts ...RequestOption) (*payload.TextResponse, error) {
	path := api.PathDataURI
	if name != "" {
		path += "?" + url.Values{"name": {name}}.Encode()
	}
	resp, err := c.Do(ctx, http.MethodPost, path, api.CTOctetStream, bytes.NewReader(content), opts...)
	if err != nil {
		return nil, err
	}
	return decodeJSON[payload.TextResponse](resp)
}
