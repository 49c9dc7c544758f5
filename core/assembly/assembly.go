// Package assembly is the in-memory model of a genome assembly layout:
// scaffolds made of oriented sequence components separated by gaps.
// It holds coordinates only, never sequence bytes.
package assembly

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrDuplicateScaffold = errors.New("duplicate scaffold name")

// Assembly is a named, ordered collection of uniquely named scaffolds.
type Assembly struct {
	Name   string
	Header []string

	scaffolds []*Scaffold
	byName    map[string]*Scaffold
}

func New(name string) *Assembly {
	return &Assembly{Name: name, byName: map[string]*Scaffold{}}
}

func (a *Assembly) AddHeaderLine(txt string) { a.Header = append(a.Header, txt) }

// AddScaffold appends s; a second scaffold with the same name is rejected.
func (a *Assembly) AddScaffold(s *Scaffold) error {
	if a.byName == nil {
		a.byName = map[string]*Scaffold{}
	}
	if _, dup := a.byName[s.Name]; dup {
		return fmt.Errorf("%w: %q in %q", ErrDuplicateScaffold, s.Name, a.Name)
	}
	a.byName[s.Name] = s
	a.scaffolds = append(a.scaffolds, s)
	return nil
}

// Scaffold looks up a scaffold by name.
func (a *Assembly) Scaffold(name string) (*Scaffold, bool) {
	s, ok := a.byName[name]
	return s, ok
}

// Scaffolds returns the scaffolds in layout order. The slice is shared; do not append to it.
func (a *Assembly) Scaffolds() []*Scaffold { return a.scaffolds }

func (a *Assembly) Len() int { return len(a.scaffolds) }

// ComponentsLength sums ComponentsLength over all scaffolds.
func (a *Assembly) ComponentsLength() int {
	n := 0
	for _, s := range a.scaffolds {
		n += s.ComponentsLength()
	}
	return n
}

// SortByName orders scaffolds naturally, so "chr2" sorts before "chr10".
func (a *Assembly) SortByName() {
	sort.SliceStable(a.scaffolds, func(i, j int) bool {
		return NaturalLess(a.scaffolds[i].Name, a.scaffolds[j].Name)
	})
}

// Validate checks every scaffold's layout.
func (a *Assembly) Validate() error {
	for _, s := range a.scaffolds {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembly) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assembly: %s\n", a.Name)
	for _, h := range a.Header {
		fmt.Fprintf(&b, "  # %s\n", h)
	}
	for _, s := range a.scaffolds {
		for _, line := range strings.SplitAfter(s.String(), "\n") {
			if line != "" {
				b.WriteString("  " + line)
			}
		}
	}
	return b.String()
}
