// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gdc

import "fmt"

// StatusError reports a non-2xx HTTP status from the GDC API. Listing and
// search operations halt on it; the downloader records it per file and
// moves on.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GDC API returned HTTP %d for %s", e.Code, e.URL)
}

// SchemaError reports a response body missing an expected key. It is fatal
// for the operation that encountered it; there is no recovery or retry.
type SchemaError struct {
	Key string
	URL string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("GDC response from %s is missing %q", e.URL, e.Key)
}
