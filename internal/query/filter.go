// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds GDC filter trees from flat query conditions.
package query

import "sort"

// Operators understood by the GDC search endpoints.
const (
	OpAnd = "and"
	OpOr  = "or"
	OpEq  = "="
	OpIn  = "in"
)

// Filter is one node of a GDC filter tree. Content is either a []Filter
// (for boolean operators) or a Comparison (for leaf operators). Trees are
// built fresh per query and never mutated after construction.
type Filter struct {
	Op      string `json:"op"`
	Content any    `json:"content"`
}

// Comparison is the content of a leaf node: a field name known to the GDC
// schema compared against a scalar or a set of values. Field names are not
// validated locally; a bad field surfaces as an API rejection.
type Comparison struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Eq returns an equality comparison on field.
func Eq(field string, value any) Filter {
	return Filter{Op: OpEq, Content: Comparison{Field: field, Value: value}}
}

// In returns a membership comparison: field's value must be one of values.
func In(field string, values []string) Filter {
	return Filter{Op: OpIn, Content: Comparison{Field: field, Value: values}}
}

// And combines children under a logical AND.
func And(children ...Filter) Filter {
	return Filter{Op: OpAnd, Content: children}
}

// FromMap converts a flat mapping of field name to value into a filter tree
// combining all entries with AND. Scalar values become equality comparisons;
// string-slice values become membership comparisons. Children are ordered by
// sorted field name so the encoded tree is deterministic.
func FromMap(conds map[string]any) Filter {
	fields := make([]string, 0, len(conds))
	for f := range conds {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	children := make([]Filter, 0, len(fields))
	for _, f := range fields {
		switch v := conds[f].(type) {
		case []string:
			children = append(children, In(f, v))
		default:
			children = append(children, Eq(f, v))
		}
	}
	return And(children...)
}
