// internal/output/overlap.go
package output

import (
	"fmt"
	"io"

	"tolasm/core/overlap"
	"tolasm/pkg/api"
)

// FileReport is the bait search result for one assembly file.
type FileReport struct {
	File string
	Hits []overlap.Hit
}

// ToAPIOverlap converts one hit to the stable wire schema (v1).
func ToAPIOverlap(file string, h overlap.Hit) api.OverlapV1 {
	c := h.Component
	return api.OverlapV1{
		File:     file,
		Scaffold: h.Scaffold,
		Row:      h.Row + 1,
		Position: h.Position,
		Name:     c.Name(),
		Start:    c.Start(),
		End:      c.End(),
		Strand:   c.Strand().String(),
		Tags:     c.Tags.List(),
		Bait:     fmt.Sprintf("%s:%d-%d", h.Bait.Name(), h.Bait.Start(), h.Bait.End()),
		Overlap:  h.Overlap,
	}
}

// ToAPIOverlaps flattens a report; never returns nil.
func ToAPIOverlaps(rep FileReport) []api.OverlapV1 {
	out := make([]api.OverlapV1, 0, len(rep.Hits))
	for _, h := range rep.Hits {
		out = append(out, ToAPIOverlap(rep.File, h))
	}
	return out
}

// WriteOverlapText prints a file heading followed by two lines per hit:
//
//	File: curated.agp
//	  first row of Scaffold_1: chr1:1-500(+)
//	    overlaps chr1:100-200 by 101 bp
func WriteOverlapText(w io.Writer, rep FileReport) error {
	if _, err := fmt.Fprintf(w, "\nFile: %s\n", rep.File); err != nil {
		return err
	}
	for _, h := range rep.Hits {
		_, err := fmt.Fprintf(w, "  %s of %s: %s\n    overlaps %s:%d-%d by %s bp\n",
			h.Position, h.Scaffold, h.Component,
			h.Bait.Name(), h.Bait.Start(), h.Bait.End(), BasePairs(h.Overlap))
		if err != nil {
			return err
		}
	}
	return nil
}

// OverlapWarning describes a pair of components sharing sequence.
func OverlapWarning(r overlap.Report) string {
	return fmt.Sprintf("overlap of %s bp: %s and %s", BasePairs(r.Length()), r.A, r.B)
}
