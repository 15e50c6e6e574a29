// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFromMapRootAndArity(t *testing.T) {
	tests := []struct {
		name  string
		conds map[string]any
		want  int
	}{
		{"single condition", map[string]any{"access": "open"}, 1},
		{"three conditions", map[string]any{
			"access":                   "open",
			"data_type":                "Gene Expression Quantification",
			"cases.project.project_id": "TCGA-BRCA",
		}, 3},
		{"empty mapping", map[string]any{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromMap(tt.conds)
			if f.Op != OpAnd {
				t.Errorf("root op = %q, want %q", f.Op, OpAnd)
			}
			children, ok := f.Content.([]Filter)
			if !ok {
				t.Fatalf("root content is %T, want []Filter", f.Content)
			}
			if len(children) != tt.want {
				t.Errorf("len(children) = %d, want %d", len(children), tt.want)
			}
		})
	}
}

func TestFromMapDeterministicOrder(t *testing.T) {
	f := FromMap(map[string]any{"b": "2", "a": "1", "c": "3"})
	children := f.Content.([]Filter)

	var fields []string
	for _, child := range children {
		fields = append(fields, child.Content.(Comparison).Field)
	}
	if !reflect.DeepEqual(fields, []string{"a", "b", "c"}) {
		t.Errorf("child order = %v, want sorted field names", fields)
	}
}

func TestFromMapSliceBecomesMembership(t *testing.T) {
	f := FromMap(map[string]any{
		"file_id": []string{"uuid-1", "uuid-2"},
		"access":  "open",
	})
	children := f.Content.([]Filter)

	if children[0].Op != OpEq {
		t.Errorf("scalar condition op = %q, want %q", children[0].Op, OpEq)
	}
	if children[1].Op != OpIn {
		t.Errorf("slice condition op = %q, want %q", children[1].Op, OpIn)
	}
}

func TestFilterJSONEncoding(t *testing.T) {
	f := FromMap(map[string]any{"access": "open"})

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"op":"and","content":[{"op":"=","content":{"field":"access","value":"open"}}]}`
	if string(data) != want {
		t.Errorf("encoded filter = %s, want %s", data, want)
	}
}

func TestFilterJSONRoundTrip(t *testing.T) {
	f := FromMap(map[string]any{"cases.project.project_id": "TCGA-LUAD"})

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["op"] != "and" {
		t.Errorf("decoded op = %v, want and", decoded["op"])
	}
	leaf := decoded["content"].([]any)[0].(map[string]any)
	content := leaf["content"].(map[string]any)
	if content["field"] != "cases.project.project_id" || content["value"] != "TCGA-LUAD" {
		t.Errorf("leaf = %v, field/value not preserved", content)
	}
}

func TestIn(t *testing.T) {
	f := In("file_id", []string{"a", "b"})
	if f.Op != OpIn {
		t.Errorf("op = %q, want %q", f.Op, OpIn)
	}
	cmp := f.Content.(Comparison)
	if cmp.Field != "file_id" {
		t.Errorf("field = %q, want file_id", cmp.Field)
	}
	if !reflect.DeepEqual(cmp.Value, []string{"a", "b"}) {
		t.Errorf("value = %v, want [a b]", cmp.Value)
	}
}
