// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download streams GDC data files to disk one at a time with
// per-chunk progress reporting. Downloads are sequential on purpose: the
// bulk endpoint reports no per-file size, which would make progress
// reporting impossible.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/gdc-engine/internal/gdc"
	"github.com/pdiddy/gdc-engine/pkg/types"
)

const (
	defaultChunkSize      = 1024
	defaultKeepExtensions = 1
)

// BatchResult separates successful downloads from itemized failures. A key
// appears in exactly one of the two maps; callers check Failed instead of
// inferring failure from absent keys.
type BatchResult struct {
	Files  map[string]types.FileDownload
	Failed map[string]error
}

// HasFailures reports whether any file in the batch failed.
func (r BatchResult) HasFailures() bool { return len(r.Failed) > 0 }

// Paths returns the loose key-to-path mapping: successful files only,
// failed keys silently absent.
func (r BatchResult) Paths() map[string]string {
	paths := make(map[string]string, len(r.Files))
	for key, f := range r.Files {
		paths[key] = f.Path
	}
	return paths
}

// FetchBatch downloads the files in ids (logical key to file UUID) into
// cfg.Dir, strictly one at a time in sorted key order. A failed file is
// recorded in the result and the batch continues. Bytes are written to the
// final path as they arrive; a crash mid-download leaves a truncated file
// there, not a temp artifact.
func FetchBatch(ctx context.Context, client *gdc.Client, ids map[string]string, cfg types.DownloadConfig, rep Reporter) (BatchResult, error) {
	if rep == nil {
		rep = NopReporter{}
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	keep := cfg.KeepExtensions
	if keep <= 0 {
		keep = defaultKeepExtensions
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("resolving download directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating download directory: %w", err)
	}

	keys := make([]string, 0, len(ids))
	for key := range ids {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := BatchResult{
		Files:  make(map[string]types.FileDownload, len(ids)),
		Failed: make(map[string]error),
	}
	rep.BatchStart(absDir, len(keys))

	for i, key := range keys {
		fd, err := fetchOne(ctx, client, i+1, len(keys), key, ids[key], absDir, keep, chunkSize, rep)
		if err != nil {
			result.Failed[key] = err
			rep.FileFailed(i+1, len(keys), key, err)
			continue
		}
		result.Files[key] = fd
	}
	return result, nil
}

// fetchOne downloads a single file and returns its descriptor. The local
// path is decided once, when the response headers are parsed, and never
// changes afterwards.
func fetchOne(ctx context.Context, client *gdc.Client, index, count int, key, uuid, absDir string, keep, chunkSize int, rep Reporter) (types.FileDownload, error) {
	resp, err := client.Data(ctx, uuid)
	if err != nil {
		return types.FileDownload{}, err
	}
	defer resp.Body.Close()

	dataURL := client.BaseURL() + "/data/" + uuid
	name, err := dispositionName(resp.Header.Get("Content-Disposition"))
	if err != nil {
		return types.FileDownload{}, &gdc.SchemaError{Key: "Content-Disposition", URL: dataURL}
	}
	size := resp.ContentLength
	if size < 0 {
		return types.FileDownload{}, &gdc.SchemaError{Key: "Content-Length", URL: dataURL}
	}

	path := filepath.Join(absDir, name)
	if _, statErr := os.Stat(path); statErr == nil {
		name = collisionName(name, uuid, keep)
		path = filepath.Join(absDir, name)
	}

	rep.FileStart(index, count, name, size)

	f, err := os.Create(path)
	if err != nil {
		return types.FileDownload{}, fmt.Errorf("creating %s: %w", path, err)
	}

	buf := make([]byte, chunkSize)
	var written int64
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				f.Close()
				return types.FileDownload{}, fmt.Errorf("writing %s: %w", path, writeErr)
			}
			written += int64(n)
			rep.Progress(written, size)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			f.Close()
			return types.FileDownload{}, fmt.Errorf("reading body for %s: %w", uuid, readErr)
		}
	}
	if err := f.Close(); err != nil {
		return types.FileDownload{}, fmt.Errorf("closing %s: %w", path, err)
	}

	rep.FileDone()
	return types.FileDownload{Key: key, UUID: uuid, Name: name, Path: path, Size: size}, nil
}

// dispositionName extracts the server-suggested file name from a
// Content-Disposition header value.
func dispositionName(cd string) (string, error) {
	if cd == "" {
		return "", fmt.Errorf("response has no Content-Disposition header")
	}
	if _, params, err := mime.ParseMediaType(cd); err == nil {
		if name := params["filename"]; name != "" {
			return name, nil
		}
	}
	// Tolerate headers the mime package rejects.
	if idx := strings.Index(cd, "filename="); idx >= 0 {
		name := strings.Trim(cd[idx+len("filename="):], `"`)
		if name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("Content-Disposition %q carries no filename", cd)
}

// collisionName renames a colliding file to the UUID stem while keeping the
// last keep dot-separated extension segments of the original name:
// "sample.vcf.gz" with keep=1 becomes "<uuid>.gz".
func collisionName(name, uuid string, keep int) string {
	segments := strings.Split(name, ".")
	n := len(segments) - 1
	if n > keep {
		n = keep
	}
	parts := append([]string{uuid}, segments[len(segments)-n:]...)
	return strings.Join(parts, ".")
}
