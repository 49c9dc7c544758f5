// internal/writers/report.go
package writers

import (
	"io"

	"tolasm/internal/jsonlutil"
	"tolasm/internal/output"
	"tolasm/pkg/api"
)

func init() {
	RegisterReport(output.FormatText, func(w io.Writer) ReportWriter { return textReport{w} })
	RegisterReport(output.FormatJSON, func(w io.Writer) ReportWriter { return &jsonReport{w: w} })
	RegisterReport(output.FormatJSONL, func(w io.Writer) ReportWriter {
		return jsonlReport{jsonlutil.Start[api.OverlapV1](w, 64, func(v api.OverlapV1) any { return v }, IsBrokenPipe)}
	})
}

type textReport struct{ w io.Writer }

func (t textReport) Write(rep output.FileReport) error { return output.WriteOverlapText(t.w, rep) }
func (t textReport) Close() error                      { return nil }

// jsonReport collects every hit into one array written on Close.
type jsonReport struct {
	w    io.Writer
	hits []api.OverlapV1
}

func (j *jsonReport) Write(rep output.FileReport) error {
	j.hits = append(j.hits, output.ToAPIOverlaps(rep)...)
	return nil
}

func (j *jsonReport) Close() error {
	if j.hits == nil {
		j.hits = []api.OverlapV1{}
	}
	return output.EncodePretty(j.w, j.hits)
}

type jsonlReport struct{ s *jsonlutil.Stream[api.OverlapV1] }

func (j jsonlReport) Write(rep output.FileReport) error {
	for _, v := range output.ToAPIOverlaps(rep) {
		j.s.Send(v)
	}
	return nil
}

func (j jsonlReport) Close() error { return j.s.Close() }
