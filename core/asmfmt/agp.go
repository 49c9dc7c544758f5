// core/asmfmt/agp.go
package asmfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tolasm/core/assembly"
)

const agpEvidence = "proximity_ligation"

// ParseAGP reads an AGP layout. Header lines ("# ...") are kept, "##" directives
// and blank lines are skipped. Columns after the ninth of a component row are tags.
func ParseAGP(r io.Reader, name string) (*assembly.Assembly, error) {
	b := newBuilder(name)
	err := scanLines(r, func(n int, line string) error {
		if isBlank(line) || strings.HasPrefix(line, "##") {
			return nil
		}
		if strings.HasPrefix(line, "#") {
			addHeader(b.asm, line)
			return nil
		}
		f := strings.Split(line, "\t")
		if len(f) < 5 {
			return b.fail(n, line, fmt.Errorf("%w: %d columns", ErrColumnCount, len(f)))
		}
		if err := b.open(f[0], n, line); err != nil {
			return err
		}
		switch f[4] {
		case "W":
			c, err := agpComponent(f)
			if err != nil {
				return b.fail(n, line, err)
			}
			return b.component(c, n, line)
		case "U", "N":
			g, err := agpGap(f)
			if err != nil {
				return b.fail(n, line, err)
			}
			return b.gap(g, n, line)
		default:
			return b.fail(n, line, fmt.Errorf("%w %q", ErrComponentType, f[4]))
		}
	})
	if err != nil {
		return nil, err
	}
	return b.finish()
}

func agpComponent(f []string) (assembly.Component, error) {
	if len(f) < 9 {
		return assembly.Component{}, fmt.Errorf("%w: component row has %d columns, want at least 9", ErrColumnCount, len(f))
	}
	start, err := strconv.Atoi(f[6])
	if err != nil {
		return assembly.Component{}, fmt.Errorf("%w: component start %q", ErrInterval, f[6])
	}
	end, err := strconv.Atoi(f[7])
	if err != nil {
		return assembly.Component{}, fmt.Errorf("%w: component end %q", ErrInterval, f[7])
	}
	var strand assembly.Strand
	switch f[8] {
	case "+":
		strand = assembly.Plus
	case "-":
		strand = assembly.Minus
	default:
		return assembly.Component{}, fmt.Errorf("%w: orientation %q", ErrInterval, f[8])
	}
	iv, err := assembly.NewInterval(f[5], start, end, strand)
	if err != nil {
		return assembly.Component{}, err
	}
	return assembly.NewComponent(iv, splitTags(f[9:])...), nil
}

func agpGap(f []string) (assembly.Gap, error) {
	if len(f) != 8 && len(f) != 9 {
		return assembly.Gap{}, fmt.Errorf("%w: gap row has %d columns, want 8 or 9", ErrColumnCount, len(f))
	}
	length, err := strconv.Atoi(f[5])
	if err != nil || length < 1 {
		return assembly.Gap{}, fmt.Errorf("%w: gap length %q", ErrInterval, f[5])
	}
	gt, err := assembly.ParseGapType(f[6])
	if err != nil {
		return assembly.Gap{}, fmt.Errorf("%w: %v", ErrGapType, err)
	}
	linked, err := parseLinkage(f[7])
	if err != nil {
		return assembly.Gap{}, err
	}
	return assembly.Gap{Length: length, Type: gt, Linkage: linked}, nil
}

func parseLinkage(txt string) (bool, error) {
	switch txt {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: linkage %q", ErrGapType, txt)
}

func linkage(linked bool) string {
	if linked {
		return "yes"
	}
	return "no"
}

// WriteAGP serializes a with scaffold coordinates and part numbers recomputed
// from the row lengths.
func WriteAGP(w io.Writer, a *assembly.Assembly) error {
	bw := bufio.NewWriter(w)
	for _, h := range a.Header {
		fmt.Fprintf(bw, "# %s\n", h)
	}
	for _, s := range a.Scaffolds() {
		p := 0
		for i, r := range s.Rows {
			fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t", s.Name, p+1, p+r.Span(), i+1)
			p += r.Span()
			switch r := r.(type) {
			case assembly.Component:
				fmt.Fprintf(bw, "W\t%s\t%d\t%d\t%s", r.Name(), r.Start(), r.End(), r.Strand())
				for _, t := range r.Tags.List() {
					bw.WriteString("\t" + t)
				}
			case assembly.Gap:
				code, evidence := "N", "na"
				if r.Length == assembly.DefaultGapLength {
					code = "U"
				}
				if r.Linkage {
					evidence = agpEvidence
				}
				fmt.Fprintf(bw, "%s\t%d\t%s\t%s\t%s", code, r.Length, r.Type, linkage(r.Linkage), evidence)
			default:
				assembly.UnknownRow(r)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
