// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pdiddy/gdc-engine/internal/query"
)

// FileSet is the outcome of a file UUID listing. Total is the match count
// the server reported before the full fetch; when the server caps the
// per-request size, len(UUIDs) comes back smaller than Total.
type FileSet struct {
	UUIDs []string
	Total int
}

// Truncated reports whether the server returned fewer hits than it counted.
func (s FileSet) Truncated() bool { return len(s.UUIDs) < s.Total }

// FileUUIDs returns the file_id of every file matching filter. Count-then-
// fetch: a first request learns the total match count, a second fetches
// everything with size set to that count.
func (c *Client) FileUUIDs(ctx context.Context, filter query.Filter) (FileSet, error) {
	encoded, err := json.Marshal(filter)
	if err != nil {
		return FileSet{}, fmt.Errorf("encoding filter: %w", err)
	}

	params := url.Values{
		"filters": {string(encoded)},
		"fields":  {"file_id"},
	}
	count, err := c.postForm(ctx, "/files", params)
	if err != nil {
		return FileSet{}, err
	}

	params.Set("size", strconv.Itoa(count.Pagination.Total))
	data, err := c.getJSON(ctx, "/files", params)
	if err != nil {
		return FileSet{}, err
	}

	uuids := make([]string, 0, len(data.Hits))
	for _, hit := range data.Hits {
		id, err := stringField(hit, "file_id", c.baseURL+"/files")
		if err != nil {
			return FileSet{}, err
		}
		uuids = append(uuids, id)
	}
	return FileSet{UUIDs: uuids, Total: count.Pagination.Total}, nil
}
