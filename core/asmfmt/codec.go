// core/asmfmt/codec.go
package asmfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"tolasm/core/assembly"
)

// Parse reads a layout in format f. The assembly is named name.
func Parse(r io.Reader, f Format, name string) (*assembly.Assembly, error) {
	switch f {
	case AGP:
		return ParseAGP(r, name)
	case TPF:
		return ParseTPF(r, name)
	}
	return nil, fmt.Errorf("cannot parse %s as an assembly layout", f)
}

// Write serializes a in format f. STR is the human readable dump.
func Write(w io.Writer, a *assembly.Assembly, f Format) error {
	switch f {
	case AGP:
		return WriteAGP(w, a)
	case TPF:
		return WriteTPF(w, a)
	case STR:
		_, err := io.WriteString(w, a.String())
		return err
	}
	return fmt.Errorf("cannot write an assembly layout as %s", f)
}

// Text serializes a to a string. It panics when f is not AGP, TPF or STR.
func Text(a *assembly.Assembly, f Format) string {
	var b strings.Builder
	if err := Write(&b, a, f); err != nil {
		panic(err)
	}
	return b.String()
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	return nil
}

var headerRE = regexp.MustCompile(`^[#\s]+(.+)`)

func addHeader(a *assembly.Assembly, line string) {
	if m := headerRE.FindStringSubmatch(line); m != nil {
		a.AddHeaderLine(strings.TrimRight(m[1], " \t"))
	}
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

func splitTags(cols []string) []string {
	var tags []string
	for _, c := range cols {
		tags = append(tags, strings.Fields(c)...)
	}
	return tags
}
