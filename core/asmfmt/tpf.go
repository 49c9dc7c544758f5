// core/asmfmt/tpf.go
package asmfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tolasm/core/assembly"
)

// ParseTPF reads the local TPF dialect:
//
//	?	name:start-end	scaffold	PLUS|MINUS	[tag]...
//	GAP	TYPE-2|TYPE-3	length
//
// A gap row belongs to the scaffold of the sequence row before it.
func ParseTPF(r io.Reader, name string) (*assembly.Assembly, error) {
	b := newBuilder(name)
	err := scanLines(r, func(n int, line string) error {
		if isBlank(line) {
			return nil
		}
		if strings.HasPrefix(line, "#") {
			addHeader(b.asm, line)
			return nil
		}
		f := strings.Split(line, "\t")
		if f[0] == "GAP" || (f[0] == "" && len(f) == 3) {
			g, err := tpfGap(f)
			if err != nil {
				return b.fail(n, line, err)
			}
			return b.gap(g, n, line)
		}
		if len(f) < 4 {
			return b.fail(n, line, fmt.Errorf("%w: %d columns, want at least 4", ErrColumnCount, len(f)))
		}
		c, err := tpfComponent(f)
		if err != nil {
			return b.fail(n, line, err)
		}
		if err := b.open(f[2], n, line); err != nil {
			return err
		}
		return b.component(c, n, line)
	})
	if err != nil {
		return nil, err
	}
	return b.finish()
}

// tpfGap reads "GAP TYPE-n length [linkage]". TYPE-2 gaps are linked and
// TYPE-3 gaps are not unless the optional yes/no column says otherwise.
func tpfGap(f []string) (assembly.Gap, error) {
	if len(f) != 3 && len(f) != 4 {
		return assembly.Gap{}, fmt.Errorf("%w: gap row has %d columns, want 3 or 4", ErrColumnCount, len(f))
	}
	var g assembly.Gap
	switch f[1] {
	case "TYPE-2":
		g.Type, g.Linkage = assembly.ScaffoldGap, true
	case "TYPE-3":
		g.Type, g.Linkage = assembly.ContigGap, false
	default:
		return g, fmt.Errorf("%w: %q", ErrGapType, f[1])
	}
	length, err := strconv.Atoi(f[2])
	if err != nil || length < 1 {
		return g, fmt.Errorf("%w: gap length %q", ErrInterval, f[2])
	}
	g.Length = length
	if len(f) == 4 {
		if g.Linkage, err = parseLinkage(f[3]); err != nil {
			return g, err
		}
	}
	return g, nil
}

func tpfComponent(f []string) (assembly.Component, error) {
	name, start, end, err := parseSpan(f[1])
	if err != nil {
		return assembly.Component{}, err
	}
	var strand assembly.Strand
	switch f[3] {
	case "PLUS":
		strand = assembly.Plus
	case "MINUS":
		strand = assembly.Minus
	default:
		return assembly.Component{}, fmt.Errorf("%w: orientation %q", ErrInterval, f[3])
	}
	iv, err := assembly.NewInterval(name, start, end, strand)
	if err != nil {
		return assembly.Component{}, err
	}
	return assembly.NewComponent(iv, splitTags(f[4:])...), nil
}

// parseSpan splits "name:start-end". The name may itself contain ':' or '-'.
func parseSpan(txt string) (name string, start, end int, err error) {
	colon := strings.LastIndexByte(txt, ':')
	if colon < 1 {
		return "", 0, 0, fmt.Errorf("%w: unexpected name format %q", ErrInterval, txt)
	}
	name, rng := txt[:colon], txt[colon+1:]
	dash := strings.IndexByte(rng, '-')
	if dash < 1 {
		return "", 0, 0, fmt.Errorf("%w: unexpected name format %q", ErrInterval, txt)
	}
	if start, err = strconv.Atoi(rng[:dash]); err != nil {
		return "", 0, 0, fmt.Errorf("%w: unexpected name format %q", ErrInterval, txt)
	}
	if end, err = strconv.Atoi(rng[dash+1:]); err != nil {
		return "", 0, 0, fmt.Errorf("%w: unexpected name format %q", ErrInterval, txt)
	}
	return name, start, end, nil
}

// WriteTPF serializes a. Header lines are written as "## line".
func WriteTPF(w io.Writer, a *assembly.Assembly) error {
	bw := bufio.NewWriter(w)
	for _, h := range a.Header {
		fmt.Fprintf(bw, "## %s\n", h)
	}
	for _, s := range a.Scaffolds() {
		for _, r := range s.Rows {
			switch r := r.(type) {
			case assembly.Component:
				fmt.Fprintf(bw, "?\t%s:%d-%d\t%s\t%s", r.Name(), r.Start(), r.End(), s.Name, r.Strand().TPF())
				for _, t := range r.Tags.List() {
					bw.WriteString("\t" + t)
				}
			case assembly.Gap:
				typ, linked := "TYPE-2", true
				if r.Type == assembly.ContigGap {
					typ, linked = "TYPE-3", false
				}
				fmt.Fprintf(bw, "GAP\t%s\t%d", typ, r.Length)
				if r.Linkage != linked {
					bw.WriteString("\t" + linkage(r.Linkage))
				}
			default:
				assembly.UnknownRow(r)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
