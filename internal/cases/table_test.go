// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTableAddAndColumns(t *testing.T) {
	table := NewTable()
	table.Add("c-1", map[string]any{"sex": "female", "project_id": "TCGA-BRCA"})
	table.Add("c-2", map[string]any{"sex": "male", "age_at_diagnosis": 61.0})

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	want := []string{"age_at_diagnosis", "project_id", "sex"}
	if !reflect.DeepEqual(table.Columns(), want) {
		t.Errorf("Columns() = %v, want sorted union %v", table.Columns(), want)
	}
}

func TestTableAddReplacesRow(t *testing.T) {
	table := NewTable()
	table.Add("c-1", map[string]any{"sex": "female"})
	table.Add("c-1", map[string]any{"sex": "male"})

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after replacement", table.Len())
	}
	if table.Row("c-1")["sex"] != "male" {
		t.Errorf("row = %v, want the replacement", table.Row("c-1"))
	}
}

func TestWriteTSV(t *testing.T) {
	table := NewTable()
	table.Add("c-1", map[string]any{"sex": "female", "age_at_diagnosis": 61.0})
	table.Add("c-2", map[string]any{"sex": "male", "project_id": "TCGA-LUAD"})

	path := filepath.Join(t.TempDir(), "cases.tsv")
	if err := table.WriteTSV(path); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading TSV: %v", err)
	}

	wantHeader := []string{"case_id", "age_at_diagnosis", "project_id", "sex"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("header = %v, want %v", records[0], wantHeader)
	}
	wantRows := [][]string{
		{"c-1", "61", "", "female"},
		{"c-2", "", "TCGA-LUAD", "male"},
	}
	if !reflect.DeepEqual(records[1:], wantRows) {
		t.Errorf("rows = %v, want %v", records[1:], wantRows)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "male", "male"},
		{"whole float", 61.0, "61"},
		{"fractional float", 0.5, "0.5"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellString(tt.value); got != tt.want {
				t.Errorf("cellString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
