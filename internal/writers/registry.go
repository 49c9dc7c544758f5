// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"tolasm/core/assembly"
	"tolasm/internal/output"
)

// ReportWriter receives one overlap report per input file.
type ReportWriter interface {
	Write(output.FileReport) error
	Close() error
}

// Writer registries (format → handler). Registered in init() of the
// files implementing them.
var (
	LayoutWriters = map[string]func(w io.Writer, a *assembly.Assembly) error{}
	ReportWriters = map[string]func(w io.Writer) ReportWriter{}
)

// Register helpers (idempotent last-wins)
func RegisterLayout(format string, fn func(io.Writer, *assembly.Assembly) error) {
	LayoutWriters[format] = fn
}
func RegisterReport(format string, fn func(io.Writer) ReportWriter) { ReportWriters[format] = fn }

// WriteLayout serializes a in the named format.
func WriteLayout(format string, w io.Writer, a *assembly.Assembly) error {
	fn, ok := LayoutWriters[format]
	if !ok {
		return fmt.Errorf("unknown layout format %q (no writer registered)", format)
	}
	return fn(w, a)
}

// NewReportWriter returns the report writer for format.
func NewReportWriter(format string, w io.Writer) (ReportWriter, error) {
	fn, ok := ReportWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w), nil
}

// Formats lists the registered names of a registry, sorted.
func Formats[F any](reg map[string]F) []string {
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
