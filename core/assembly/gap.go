// core/assembly/gap.go
package assembly

import "fmt"

// DefaultGapLength is the project-wide gap inserted between placed components.
// It overrides the defaults of both file formats.
const DefaultGapLength = 200

// GapType distinguishes gaps between scaffolded contigs from gaps inside contigs.
type GapType uint8

const (
	ScaffoldGap GapType = iota
	ContigGap
)

func (t GapType) String() string {
	if t == ContigGap {
		return "contig"
	}
	return "scaffold"
}

// ParseGapType accepts the AGP names "scaffold" and "contig".
func ParseGapType(txt string) (GapType, error) {
	switch txt {
	case "scaffold":
		return ScaffoldGap, nil
	case "contig":
		return ContigGap, nil
	}
	return 0, fmt.Errorf("unknown gap type %q", txt)
}

// Gap is a run of unknown bases between two components.
type Gap struct {
	Length  int
	Type    GapType
	Linkage bool
}

// DefaultGap is a 200 bp scaffold gap with linkage evidence.
func DefaultGap() Gap {
	return Gap{Length: DefaultGapLength, Type: ScaffoldGap, Linkage: true}
}

func (g Gap) Span() int { return g.Length }

func (g Gap) String() string { return fmt.Sprintf("Gap:%d %s", g.Length, g.Type) }

func (Gap) isRow() {}
