// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gdc is a client for the GDC search and retrieval API. It covers
// the open-access /projects, /files, /cases and /data endpoints; every call
// is synchronous and takes a context.
package gdc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/gdc-engine/pkg/types"
)

// DefaultBaseURL is the production GDC API root.
const DefaultBaseURL = "https://api.gdc.cancer.gov"

// Client issues requests against one GDC API root. The base URL is fixed at
// construction; there is no process-wide endpoint state.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// New returns a client for cfg.BaseURL, falling back to DefaultBaseURL.
// cfg.Timeout bounds every request including body streaming.
func New(cfg types.ClientConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Pagination is the pagination block of a search response envelope.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// searchData is the decoded "data" object of a search response.
type searchData struct {
	Hits       []map[string]any
	Pagination Pagination
}

// envelope mirrors the GDC response shape. Pointers distinguish an absent
// key from a zero value so schema mismatches fail fast.
type envelope struct {
	Data *struct {
		Hits       *[]map[string]any `json:"hits"`
		Pagination *Pagination       `json:"pagination"`
	} `json:"data"`
}

// getJSON issues a GET with query parameters and decodes the envelope.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values) (searchData, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return searchData{}, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req)
}

// postForm issues a form-encoded POST and decodes the envelope. The GDC
// search endpoints accept the same parameters as form fields, which keeps
// long filter trees out of the URL.
func (c *Client) postForm(ctx context.Context, endpoint string, params url.Values) (searchData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint,
		strings.NewReader(params.Encode()))
	if err != nil {
		return searchData{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (searchData, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return searchData{}, fmt.Errorf("GDC API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return searchData{}, &StatusError{Code: resp.StatusCode, URL: req.URL.String()}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return searchData{}, fmt.Errorf("parsing GDC response: %w", err)
	}
	if env.Data == nil {
		return searchData{}, &SchemaError{Key: "data", URL: req.URL.String()}
	}
	if env.Data.Pagination == nil {
		return searchData{}, &SchemaError{Key: "data.pagination", URL: req.URL.String()}
	}
	if env.Data.Hits == nil {
		return searchData{}, &SchemaError{Key: "data.hits", URL: req.URL.String()}
	}
	return searchData{Hits: *env.Data.Hits, Pagination: *env.Data.Pagination}, nil
}

// stringField extracts hit[key] as a string, failing with a SchemaError
// when the key is absent or not a string.
func stringField(hit map[string]any, key, reqURL string) (string, error) {
	v, ok := hit[key]
	if !ok {
		return "", &SchemaError{Key: "hits." + key, URL: reqURL}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Key: "hits." + key, URL: reqURL}
	}
	return s, nil
}
