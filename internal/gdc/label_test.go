// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestUnwrapLabel(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{"string", "TCGA-01", "TCGA-01", true},
		{"number", 42.0, "42", true},
		{"bool", true, "true", true},
		{"nil", nil, "", false},
		{"empty list", []any{}, "", false},
		{"list of strings", []any{"first", "second"}, "first", true},
		{"nested list", []any{[]any{"deep"}}, "deep", true},
		{"mapping", map[string]any{"submitter_id": "S-1"}, "S-1", true},
		{"mapping takes first key", map[string]any{"b": "later", "a": "early"}, "early", true},
		{"list of mappings", []any{map[string]any{"k": "v"}}, "v", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unwrapLabel(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelFilesShallowTraversal(t *testing.T) {
	var gotFields, gotSize string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotFields = r.PostForm.Get("fields")
		gotSize = r.PostForm.Get("size")
		hits := []map[string]any{
			{
				"file_id": "uuid-1",
				// The dotted path below cases is never followed; the
				// nested structure is unwrapped instead.
				"cases": []any{map[string]any{"submitter_id": "TCGA-AB-1234"}},
			},
			{
				"file_id": "uuid-2",
				"cases":   []any{map[string]any{"submitter_id": "TCGA-CD-5678"}},
			},
		}
		w.Write(searchBody(t, hits, Pagination{Page: 1, Pages: 1, Total: 2}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	result, err := c.LabelFiles(context.Background(),
		[]string{"uuid-1", "uuid-2"}, "cases.submitter_id")
	if err != nil {
		t.Fatalf("LabelFiles: %v", err)
	}

	if gotFields != "file_id,cases.submitter_id" {
		t.Errorf("fields = %q, want file_id plus the full label field", gotFields)
	}
	if gotSize != "2" {
		t.Errorf("size = %q, want the UUID count", gotSize)
	}

	want := map[string]string{
		"TCGA-AB-1234": "uuid-1",
		"TCGA-CD-5678": "uuid-2",
	}
	if !reflect.DeepEqual(result.Labels, want) {
		t.Errorf("Labels = %v, want %v", result.Labels, want)
	}
	if len(result.Collisions) != 0 {
		t.Errorf("Collisions = %v, want none", result.Collisions)
	}
}

func TestLabelFilesCollisionLastWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits := []map[string]any{
			{"file_id": "uuid-early", "cases": []any{map[string]any{"submitter_id": "SHARED"}}},
			{"file_id": "uuid-late", "cases": []any{map[string]any{"submitter_id": "SHARED"}}},
		}
		w.Write(searchBody(t, hits, Pagination{Page: 1, Pages: 1, Total: 2}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	result, err := c.LabelFiles(context.Background(),
		[]string{"uuid-early", "uuid-late"}, "cases.submitter_id")
	if err != nil {
		t.Fatalf("LabelFiles: %v", err)
	}

	if len(result.Labels) != 1 {
		t.Fatalf("len(Labels) = %d, want the collapsed 1", len(result.Labels))
	}
	if result.Labels["SHARED"] != "uuid-late" {
		t.Errorf("Labels[SHARED] = %q, want the last-processed uuid-late", result.Labels["SHARED"])
	}
	if !reflect.DeepEqual(result.Collisions, []string{"SHARED"}) {
		t.Errorf("Collisions = %v, want [SHARED]", result.Collisions)
	}
}

func TestLabelFilesStatusHalts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if _, err := c.LabelFiles(context.Background(), []string{"uuid-1"}, "cases.submitter_id"); err == nil {
		t.Fatal("expected error on non-200, got nil")
	}
}
