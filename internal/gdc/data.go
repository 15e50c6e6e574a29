// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Data issues a streaming GET against /data/{uuid} and returns the raw
// response. The caller owns the body and must close it. A non-200 status
// is drained, closed and returned as a StatusError so callers can treat it
// as a per-file skip.
func (c *Client) Data(ctx context.Context, uuid string) (*http.Response, error) {
	reqURL := c.baseURL + "/data/" + uuid
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GDC data request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, URL: reqURL}
	}
	return resp, nil
}
