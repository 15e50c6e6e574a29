// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gdc-engine client.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout, which
	// leaves calls able to block indefinitely on an unresponsive server.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gdc-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the GDC API client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the GDC API root (default "https://api.gdc.cancer.gov").
	// Injected per client; there is no process-wide endpoint state.
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// DownloadConfig holds settings for file downloads.
type DownloadConfig struct {
	// Dir is the target directory for downloaded files. Empty means the
	// current working directory.
	Dir string `json:"dir" yaml:"dir"`

	// KeepExtensions is how many trailing dot-separated extension segments
	// of the server-suggested name survive a collision rename (default 1).
	// "sample.vcf.gz" with KeepExtensions=1 becomes "<uuid>.gz".
	KeepExtensions int `json:"keep_extensions" yaml:"keep_extensions"`

	// ChunkSize is the streaming write granularity in bytes (default 1024).
	// Memory use per download is bounded by this value.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`
}

// CasesConfig holds settings for the case table collection.
type CasesConfig struct {
	// PageSize is the number of cases requested per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// OutputPath is where the TSV table is written (default "cases.tsv").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// StorePath, when set, additionally persists rows to a SQLite database
	// at this path.
	StorePath string `json:"store_path,omitempty" yaml:"store_path,omitempty"`
}
