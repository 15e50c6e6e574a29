// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// CasesRequest selects one page of the /cases listing.
type CasesRequest struct {
	// Fields lists the top-level fields to return per hit.
	Fields []string

	// Expand lists sub-resources to inline into each hit.
	Expand []string

	// Size is the page size; From is the 1-based index of the first record.
	Size int
	From int
}

// CasesPage is one page of case hits with its position in the full listing.
// Page increases monotonically across a walk; the walk is done when
// Page >= Pages.
type CasesPage struct {
	Hits  []map[string]any
	Page  int
	Pages int
	Total int
}

// Cases fetches a single page of the case listing. Callers drive the
// page-walk themselves by advancing req.From until Page reaches Pages.
func (c *Client) Cases(ctx context.Context, req CasesRequest) (CasesPage, error) {
	params := url.Values{
		"fields": {strings.Join(req.Fields, ",")},
		"expand": {strings.Join(req.Expand, ",")},
		"size":   {strconv.Itoa(req.Size)},
		"from":   {strconv.Itoa(req.From)},
	}
	data, err := c.postForm(ctx, "/cases", params)
	if err != nil {
		return CasesPage{}, err
	}
	return CasesPage{
		Hits:  data.Hits,
		Page:  data.Pagination.Page,
		Pages: data.Pagination.Pages,
		Total: data.Pagination.Total,
	}, nil
}
