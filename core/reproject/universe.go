// core/reproject/universe.go
package reproject

import "tolasm/core/assembly"

// Universe is the set of original sequences a curated layout may draw from:
// their lengths, and the boundaries of the original components on each.
type Universe struct {
	lengths map[string]int
	starts  map[assembly.IntervalKey]bool // Name, Start
	ends    map[assembly.IntervalKey]bool // Name, End
}

func NewUniverse() *Universe {
	return &Universe{
		lengths: map[string]int{},
		starts:  map[assembly.IntervalKey]bool{},
		ends:    map[assembly.IntervalKey]bool{},
	}
}

// AddSequence records a whole sequence as a single original component.
func (u *Universe) AddSequence(name string, length int) {
	if length > u.lengths[name] {
		u.lengths[name] = length
	}
	u.addBounds(name, 1, length)
}

// AddComponent records an original component. A sequence is taken to be as long
// as its furthest component.
func (u *Universe) AddComponent(iv assembly.Interval) {
	if iv.End() > u.lengths[iv.Name()] {
		u.lengths[iv.Name()] = iv.End()
	}
	u.addBounds(iv.Name(), iv.Start(), iv.End())
}

func (u *Universe) addBounds(name string, start, end int) {
	u.starts[assembly.IntervalKey{Name: name, Start: start}] = true
	u.ends[assembly.IntervalKey{Name: name, End: end}] = true
}

// UniverseFromAssembly collects every component of an original layout.
func UniverseFromAssembly(a *assembly.Assembly) *Universe {
	u := NewUniverse()
	for _, s := range a.Scaffolds() {
		for _, c := range s.Components() {
			u.AddComponent(c.Interval)
		}
	}
	return u
}

// Length of a named sequence.
func (u *Universe) Length(name string) (int, bool) {
	n, ok := u.lengths[name]
	return n, ok
}

func (u *Universe) Len() int { return len(u.lengths) }

// IsCut reports whether iv starts or ends away from an original component boundary.
func (u *Universe) IsCut(iv assembly.Interval) bool {
	return !u.starts[assembly.IntervalKey{Name: iv.Name(), Start: iv.Start()}] ||
		!u.ends[assembly.IntervalKey{Name: iv.Name(), End: iv.End()}]
}
