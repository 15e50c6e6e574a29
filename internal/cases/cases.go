// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cases walks the GDC case listing page by page and flattens each
// case into one tabular row.
package cases

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/gdc-engine/internal/gdc"
	"github.com/pdiddy/gdc-engine/pkg/types"
)

const defaultPageSize = 10

// defaultFields are the top-level case fields requested per hit.
var defaultFields = []string{
	"case_id",
	"project.project_id",
	"project.primary_site",
	"project.disease_type",
	"submitter_id",
}

// defaultExpand are the sub-resources inlined into each hit.
var defaultExpand = []string{"demographic", "diagnoses"}

// Collect page-walks the whole case collection and returns one flattened
// row per case. A progress line is written to w after every page. A page
// that fails to advance the walk is treated as a malformed response.
func Collect(ctx context.Context, client *gdc.Client, cfg types.CasesConfig, w io.Writer) (*Table, error) {
	size := cfg.PageSize
	if size <= 0 {
		size = defaultPageSize
	}

	table := NewTable()
	curPage, totalPages := 0, 1
	for curPage < totalPages {
		page, err := client.Cases(ctx, gdc.CasesRequest{
			Fields: defaultFields,
			Expand: defaultExpand,
			Size:   size,
			From:   size*curPage + 1,
		})
		if err != nil {
			return nil, err
		}
		if page.Page <= curPage {
			return nil, fmt.Errorf("case listing pagination did not advance past page %d", curPage)
		}
		curPage, totalPages = page.Page, page.Pages
		fmt.Fprintf(w, "\rProcessing page %d/%d...", curPage, totalPages)

		for _, hit := range page.Hits {
			caseID, ok := hit["case_id"].(string)
			if !ok {
				return nil, &gdc.SchemaError{Key: "hits.case_id", URL: client.BaseURL() + "/cases"}
			}
			table.Add(caseID, Flatten(hit))
		}
	}
	fmt.Fprintln(w)
	return table, nil
}

// Flatten merges a case hit's sub-objects into one flat row. Merge order is
// diagnoses[0], then demographic, then project; later keys overwrite
// earlier ones on collision. Only the first diagnosis is used even when
// several are present.
func Flatten(hit map[string]any) map[string]any {
	row := make(map[string]any)

	if diagnoses, ok := hit["diagnoses"].([]any); ok && len(diagnoses) > 0 {
		if first, ok := diagnoses[0].(map[string]any); ok {
			for k, v := range first {
				row[k] = v
			}
		}
	}
	if demographic, ok := hit["demographic"].(map[string]any); ok {
		for k, v := range demographic {
			row[k] = v
		}
	}
	if project, ok := hit["project"].(map[string]any); ok {
		for k, v := range project {
			row[k] = v
		}
	}
	if sid, ok := hit["submitter_id"]; ok {
		row["submitter_id"] = sid
	}
	return row
}
