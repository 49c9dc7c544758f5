// core/assembly/strand.go
package assembly

import "fmt"

// Strand is the orientation of a component within its scaffold.
type Strand int8

const (
	Plus  Strand = 1
	Minus Strand = -1
)

// Flip returns the opposite orientation.
func (s Strand) Flip() Strand { return -s }

// String returns the AGP spelling ("+" or "-").
func (s Strand) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// TPF returns the TPF spelling ("PLUS" or "MINUS").
func (s Strand) TPF() string {
	if s == Minus {
		return "MINUS"
	}
	return "PLUS"
}

// ParseStrand accepts both the AGP and the TPF spellings.
func ParseStrand(txt string) (Strand, error) {
	switch txt {
	case "+", "PLUS":
		return Plus, nil
	case "-", "MINUS":
		return Minus, nil
	}
	return 0, fmt.Errorf("unknown strand %q", txt)
}
