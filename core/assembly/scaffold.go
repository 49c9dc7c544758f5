// core/assembly/scaffold.go
package assembly

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLayout marks a scaffold whose rows do not alternate component / gap.
var ErrLayout = errors.New("invalid scaffold layout")

// Scaffold is an ordered run of rows. Rows begin and end with a Component
// and components alternate with gaps.
type Scaffold struct {
	Name string
	Rows []Row
}

func NewScaffold(name string, rows ...Row) *Scaffold {
	return &Scaffold{Name: name, Rows: rows}
}

func (s *Scaffold) AddRow(r Row) { s.Rows = append(s.Rows, r) }

// LastRowIsComponent reports whether a gap may be appended next.
func (s *Scaffold) LastRowIsComponent() bool {
	if len(s.Rows) == 0 {
		return false
	}
	_, ok := s.Rows[len(s.Rows)-1].(Component)
	return ok
}

// Validate checks the alternation invariant.
func (s *Scaffold) Validate() error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("%w: scaffold %q has no rows", ErrLayout, s.Name)
	}
	wantComponent := true
	for i, r := range s.Rows {
		switch r.(type) {
		case Component:
			if !wantComponent {
				return fmt.Errorf("%w: scaffold %q row %d: adjacent components", ErrLayout, s.Name, i+1)
			}
		case Gap:
			if wantComponent {
				if i == 0 {
					return fmt.Errorf("%w: scaffold %q begins with a gap", ErrLayout, s.Name)
				}
				return fmt.Errorf("%w: scaffold %q row %d: adjacent gaps", ErrLayout, s.Name, i+1)
			}
		default:
			UnknownRow(r)
		}
		wantComponent = !wantComponent
	}
	if wantComponent {
		return fmt.Errorf("%w: scaffold %q ends with a gap", ErrLayout, s.Name)
	}
	return nil
}

// Length is the total span of all rows, gaps included.
func (s *Scaffold) Length() int {
	n := 0
	for _, r := range s.Rows {
		n += r.Span()
	}
	return n
}

// ComponentsLength is the number of sequence bases, gaps excluded.
func (s *Scaffold) ComponentsLength() int {
	n := 0
	for _, c := range s.Components() {
		n += c.Length()
	}
	return n
}

func (s *Scaffold) Components() []Component {
	var out []Component
	for _, r := range s.Rows {
		if c, ok := r.(Component); ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *Scaffold) Gaps() []Gap {
	var out []Gap
	for _, r := range s.Rows {
		if g, ok := r.(Gap); ok {
			out = append(out, g)
		}
	}
	return out
}

// Tags is the union of the tags of every component.
func (s *Scaffold) Tags() Tags {
	var ts Tags
	for _, c := range s.Components() {
		ts = ts.Union(c.Tags)
	}
	return ts
}

// Reverse returns the reverse complement layout: rows reversed, components flipped.
func (s *Scaffold) Reverse() *Scaffold {
	out := &Scaffold{Name: s.Name, Rows: make([]Row, 0, len(s.Rows))}
	for i := len(s.Rows) - 1; i >= 0; i-- {
		switch r := s.Rows[i].(type) {
		case Component:
			out.Rows = append(out.Rows, r.Reverse())
		case Gap:
			out.Rows = append(out.Rows, r)
		default:
			UnknownRow(r)
		}
	}
	return out
}

// String renders the scaffold name followed by one line per row with its
// 1-based scaffold coordinates.
func (s *Scaffold) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('\n')
	p := 0
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "  %11d %11d  %s\n", p+1, p+r.Span(), r)
		p += r.Span()
	}
	return b.String()
}
