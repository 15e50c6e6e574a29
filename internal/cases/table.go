// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Table accumulates flattened case rows keyed by case id. Rows may carry
// different key sets; the column set is the union across all rows. Adding
// the same case id again replaces the earlier row.
type Table struct {
	ids     []string
	rows    map[string]map[string]any
	columns map[string]struct{}
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		rows:    make(map[string]map[string]any),
		columns: make(map[string]struct{}),
	}
}

// Add inserts or replaces the row for caseID.
func (t *Table) Add(caseID string, row map[string]any) {
	if _, ok := t.rows[caseID]; !ok {
		t.ids = append(t.ids, caseID)
	}
	t.rows[caseID] = row
	for k := range row {
		t.columns[k] = struct{}{}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// IDs returns the case ids in insertion order.
func (t *Table) IDs() []string { return t.ids }

// Row returns the row for caseID, or nil when absent.
func (t *Table) Row(caseID string) map[string]any { return t.rows[caseID] }

// Columns returns the sorted union of row keys.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(t.columns))
	for c := range t.columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// WriteTSV writes the table as a tab-delimited file. The first column is
// case_id, followed by the sorted row columns; cells absent from a row are
// left empty.
func (t *Table) WriteTSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	cols := t.Columns()
	header := append([]string{"case_id"}, cols...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, id := range t.ids {
		row := t.rows[id]
		record := make([]string, 0, len(header))
		record = append(record, id)
		for _, col := range cols {
			record = append(record, cellString(row[col]))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %s: %w", id, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// cellString renders a decoded JSON value for the TSV output.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
