// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives download progress. FileStart fires once per file after
// the response headers are parsed; Progress fires after every chunk write.
// A file that never produced headers (non-200, missing headers) reports
// FileFailed without a preceding FileStart.
type Reporter interface {
	BatchStart(dir string, count int)
	FileStart(index, count int, name string, size int64)
	Progress(written, size int64)
	FileDone()
	FileFailed(index, count int, key string, err error)
}

// WriterReporter prints plain progress text to W, one updating line per
// file: [done/total] Download "name": pct%.
type WriterReporter struct {
	W io.Writer

	index int
	count int
	name  string
}

func (r *WriterReporter) BatchStart(dir string, count int) {
	fmt.Fprintf(r.W, "Download data to %q\n", dir)
}

func (r *WriterReporter) FileStart(index, count int, name string, size int64) {
	r.index, r.count, r.name = index, count, name
}

func (r *WriterReporter) Progress(written, size int64) {
	pct := 0.0
	if size > 0 {
		pct = float64(written) / float64(size) * 100
	}
	fmt.Fprintf(r.W, "\r[%d/%d] Download %q: %3.0f%%", r.index, r.count, r.name, pct)
}

func (r *WriterReporter) FileDone() {
	fmt.Fprintln(r.W)
}

func (r *WriterReporter) FileFailed(index, count int, key string, err error) {
	fmt.Fprintf(r.W, "[%d/%d] skipped %q: %v\n", index, count, key, err)
}

// BarReporter renders one progress bar per file.
type BarReporter struct {
	W   io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) BatchStart(dir string, count int) {
	fmt.Fprintf(r.W, "Download data to %q\n", dir)
}

func (r *BarReporter) FileStart(index, count int, name string, size int64) {
	r.bar = progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(fmt.Sprintf("[%d/%d] %s", index, count, name)),
		progressbar.OptionSetWriter(r.W),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.W)
		}),
	)
}

func (r *BarReporter) Progress(written, size int64) {
	if r.bar != nil {
		_ = r.bar.Set64(written)
	}
}

func (r *BarReporter) FileDone() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

func (r *BarReporter) FileFailed(index, count int, key string, err error) {
	fmt.Fprintf(r.W, "[%d/%d] skipped %q: %v\n", index, count, key, err)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) BatchStart(string, int) {}
func (NopReporter) FileStart(int, int, string, int64) {}
func (NopReporter) Progress(int64, int64) {}
func (NopReporter) FileDone() {}
func (NopReporter) FileFailed(int, int, string, error) {}
