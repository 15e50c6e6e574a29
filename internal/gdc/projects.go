// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"net/url"
	"strconv"
)

// ProjectIDs returns the project_id of every project in the GDC. It asks
// the /projects endpoint for its total once, then fetches the whole set in
// a single request sized to that total. A server-side cap on the request
// size truncates the result; compare len(ids) against the first response's
// total if that matters to the caller.
func (c *Client) ProjectIDs(ctx context.Context) ([]string, error) {
	count, err := c.getJSON(ctx, "/projects", nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"size":   {strconv.Itoa(count.Pagination.Total)},
		"fields": {"project_id"},
	}
	data, err := c.getJSON(ctx, "/projects", params)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(data.Hits))
	for _, hit := range data.Hits {
		id, err := stringField(hit, "project_id", c.baseURL+"/projects")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
