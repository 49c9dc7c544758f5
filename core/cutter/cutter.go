// Package cutter writes the sequence of a reprojected assembly by copying
// pieces of the original FASTA file in destination order.
package cutter

import (
	"errors"
	"fmt"
	"io"

	"tolasm/core/assembly"
	"tolasm/core/fasta"
	"tolasm/core/reproject"
)

// ErrOrder means the instructions do not follow the layout they belong to.
var ErrOrder = errors.New("instructions out of layout order")

// Options control the output FASTA.
type Options struct {
	LineWidth int  // bases per line, fasta.DefaultLineWidth unless positive
	GapChar   byte // 'N' when 0
}

// Cutter copies indexed sequence from one source file.
type Cutter struct {
	idx *fasta.Index
	ext *fasta.Extractor
	opt Options

	// Debugf, when set, is told about each piece copied.
	Debugf func(format string, args ...any)
}

func New(idx *fasta.Index, src io.ReaderAt, opt Options) *Cutter {
	if opt.LineWidth <= 0 {
		opt.LineWidth = fasta.DefaultLineWidth
	}
	if opt.GapChar == 0 {
		opt.GapChar = 'N'
	}
	return &Cutter{idx: idx, ext: fasta.NewExtractor(src), opt: opt}
}

// Write emits one record per scaffold of a. Components are filled from ins,
// which must list them in the same order as a; gaps are written without reading
// the source. Both are consumed in a single forward pass.
func (c *Cutter) Write(w io.Writer, a *assembly.Assembly, ins []reproject.Instruction) error {
	fw := fasta.NewWriter(w, c.opt.LineWidth)
	next := 0
	for _, s := range a.Scaffolds() {
		if err := fw.Header(s.Name); err != nil {
			return err
		}
		offset := 1
		for _, r := range s.Rows {
			switch r := r.(type) {
			case assembly.Gap:
				if err := fw.Fill(c.opt.GapChar, r.Length); err != nil {
					return err
				}
			case assembly.Component:
				if next >= len(ins) {
					return fmt.Errorf("%w: no instruction for %s at %s:%d", ErrOrder, r.Interval, s.Name, offset)
				}
				in := ins[next]
				next++
				if in.Scaffold != s.Name || in.Offset != offset || !in.Source.Equal(r.Interval) {
					return fmt.Errorf("%w: got %s, want %s at %s:%d", ErrOrder, in, r.Interval, s.Name, offset)
				}
				if err := c.copy(fw, in); err != nil {
					return err
				}
			default:
				assembly.UnknownRow(r)
			}
			offset += r.Span()
		}
	}
	if next != len(ins) {
		return fmt.Errorf("%w: %d instructions left over", ErrOrder, len(ins)-next)
	}
	return fw.Flush()
}

func (c *Cutter) copy(fw *fasta.Writer, in reproject.Instruction) error {
	src := in.Source
	e, ok := c.idx.Lookup(src.Name())
	if !ok {
		return &reproject.UnknownSequenceError{Scaffold: in.Scaffold, Interval: src}
	}
	if c.Debugf != nil {
		c.Debugf("copy %s", in)
	}
	return c.ext.Extract(e, src.Start(), src.End(), src.Strand() == assembly.Minus, func(p []byte) error {
		_, err := fw.Write(p)
		return err
	})
}
