// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/gdc-engine/internal/query"
)

// LabelResult maps label values to file UUIDs. When several UUIDs resolve
// to the same label the mapping keeps whichever was processed last in
// response order; the colliding label values are listed in Collisions so
// the lossy collapse is visible to callers.
type LabelResult struct {
	Labels     map[string]string
	Collisions []string
}

// LabelFiles queries /files for labelField's value per UUID and returns a
// label-to-UUID mapping.
//
// Only the first dotted segment of labelField is read from each hit; a
// nested list or mapping under it is unwrapped best-effort (first list
// element, or the value of the lexically-first key) until a scalar is
// reached. This matches the shallow traversal downstream consumers rely on
// rather than a full dotted-path walk.
func (c *Client) LabelFiles(ctx context.Context, uuids []string, labelField string) (LabelResult, error) {
	labelKey := strings.SplitN(labelField, ".", 2)[0]

	encoded, err := json.Marshal(query.In("file_id", uuids))
	if err != nil {
		return LabelResult{}, fmt.Errorf("encoding filter: %w", err)
	}
	params := url.Values{
		"filters": {string(encoded)},
		"fields":  {"file_id," + labelField},
		"size":    {strconv.Itoa(len(uuids))},
	}

	data, err := c.postForm(ctx, "/files", params)
	if err != nil {
		return LabelResult{}, err
	}

	result := LabelResult{Labels: make(map[string]string, len(data.Hits))}
	for _, hit := range data.Hits {
		fileID, err := stringField(hit, "file_id", c.baseURL+"/files")
		if err != nil {
			return LabelResult{}, err
		}
		raw, ok := hit[labelKey]
		if !ok {
			return LabelResult{}, &SchemaError{Key: "hits." + labelKey, URL: c.baseURL + "/files"}
		}
		label, ok := unwrapLabel(raw)
		if !ok {
			continue
		}
		if _, seen := result.Labels[label]; seen {
			result.Collisions = append(result.Collisions, label)
		}
		result.Labels[label] = fileID
	}
	return result, nil
}

// unwrapLabel reduces a decoded JSON value to a scalar label string. Lists
// yield their first element and mappings the value of their lexically-first
// key, repeatedly, until a scalar remains.
func unwrapLabel(v any) (string, bool) {
	for {
		switch x := v.(type) {
		case nil:
			return "", false
		case string:
			return x, true
		case bool:
			return strconv.FormatBool(x), true
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64), true
		case []any:
			if len(x) == 0 {
				return "", false
			}
			v = x[0]
		case map[string]any:
			if len(x) == 0 {
				return "", false
			}
			keys := make([]string, 0, len(x))
			for k := range x {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			v = x[keys[0]]
		default:
			return fmt.Sprintf("%v", x), true
		}
	}
}
