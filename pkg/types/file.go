// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileDownload describes one file fetched from the data endpoint. The local
// path is fixed by collision-checking when the response headers are parsed
// and never changes afterwards.
type FileDownload struct {
	// Key is the caller-chosen logical key for this file.
	Key string `json:"key" yaml:"key"`

	// UUID is the GDC file identifier the bytes were fetched by.
	UUID string `json:"uuid" yaml:"uuid"`

	// Name is the server-suggested file name after collision resolution.
	Name string `json:"name" yaml:"name"`

	// Path is the resolved absolute local path.
	Path string `json:"path" yaml:"path"`

	// Size is the byte size declared by the Content-Length header.
	Size int64 `json:"size" yaml:"size"`
}
