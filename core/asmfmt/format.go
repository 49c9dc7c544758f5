// Package asmfmt reads and writes assembly layouts as AGP and TPF text.
package asmfmt

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a file type handled by the tools.
type Format int

const (
	Unknown Format = iota
	AGP
	TPF
	STR
	FASTA
	FAI
)

var formatNames = map[Format]string{
	AGP:   "agp",
	TPF:   "tpf",
	STR:   "str",
	FASTA: "fasta",
	FAI:   "fai",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// IsLayout reports whether the format carries an assembly layout that Parse/Write handle.
func (f Format) IsLayout() bool { return f == AGP || f == TPF }

// ParseFormat maps a user supplied name (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "agp":
		return AGP, nil
	case "tpf":
		return TPF, nil
	case "str", "txt":
		return STR, nil
	case "fa", "fasta", "fna":
		return FASTA, nil
	case "fai":
		return FAI, nil
	}
	return Unknown, fmt.Errorf("unknown format %q (want agp, tpf, str or fasta)", name)
}

var extRE = regexp.MustCompile(`(?i)\.(agp|tpf|fasta|fai|fna|fa)\w*$`)

// FromPath guesses the format from a file extension, ignoring a trailing ".gz".
// Extensions may carry a suffix, so "x.agp2" is AGP. Returns def when nothing matches.
func FromPath(path string, def Format) Format {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	m := extRE.FindStringSubmatch(base)
	if m == nil {
		return def
	}
	f, err := ParseFormat(m[1])
	if err != nil {
		return def
	}
	return f
}
