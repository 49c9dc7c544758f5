// core/reproject/stats.go
package reproject

import "tolasm/core/assembly"

// Stats summarises what curation changed.
type Stats struct {
	Cuts   int // components carrying the Cut tag
	Breaks int // original junctions absent from the new layout
	Joins  int // new junctions absent from the original layout
	Sets   []SetStats
}

type SetStats struct {
	Name             string
	Scaffolds        int
	Components       int
	ComponentsLength int
}

// endpoint is one end of a component as it faces its neighbour.
type endpoint struct {
	name  string
	pos   int
	right bool // the end coordinate (true) or the start (false)
}

type junction struct{ a, b endpoint }

func newJunction(x, y endpoint) junction {
	if y.name < x.name || (y.name == x.name && (y.pos < x.pos || (y.pos == x.pos && !y.right && x.right))) {
		x, y = y, x
	}
	return junction{x, y}
}

// junctions lists every pair of adjacent components by the ends that touch,
// so a scaffold and its reverse yield the same set.
func junctions(a *assembly.Assembly) map[junction]bool {
	out := map[junction]bool{}
	for _, s := range a.Scaffolds() {
		comps := s.Components()
		for i := 1; i < len(comps); i++ {
			out[newJunction(exitEnd(comps[i-1]), entryEnd(comps[i]))] = true
		}
	}
	return out
}

func exitEnd(c assembly.Component) endpoint {
	if c.Strand() == assembly.Minus {
		return endpoint{c.Name(), c.Start(), false}
	}
	return endpoint{c.Name(), c.End(), true}
}

func entryEnd(c assembly.Component) endpoint {
	if c.Strand() == assembly.Minus {
		return endpoint{c.Name(), c.End(), true}
	}
	return endpoint{c.Name(), c.Start(), false}
}

// CurationStats compares the original layout (nil when only sequence lengths
// were available) with the reprojected one.
func CurationStats(original *assembly.Assembly, r *Result) Stats {
	var st Stats
	before := map[junction]bool{}
	if original != nil {
		before = junctions(original)
	}
	after := junctions(r.Assembly)
	for j := range before {
		if !after[j] {
			st.Breaks++
		}
	}
	for j := range after {
		if !before[j] {
			st.Joins++
		}
	}
	for _, s := range r.Assembly.Scaffolds() {
		for _, c := range s.Components() {
			if c.Tags.Has(assembly.TagCut) {
				st.Cuts++
			}
		}
	}
	for _, p := range r.Split() {
		ss := SetStats{Name: p.Set, Scaffolds: p.Assembly.Len(), ComponentsLength: p.Assembly.ComponentsLength()}
		for _, s := range p.Assembly.Scaffolds() {
			ss.Components += len(s.Components())
		}
		st.Sets = append(st.Sets, ss)
	}
	return st
}
