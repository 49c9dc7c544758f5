// Package overlap finds components that consume the same stretch of a
// source sequence more than once.
package overlap

import (
	"fmt"
	"sort"

	"tolasm/core/assembly"
)

// Location is a component and where it sits in its assembly.
type Location struct {
	Scaffold  string
	Row       int // 0-based index into Scaffold.Rows
	Component assembly.Component
}

func (l Location) String() string {
	return fmt.Sprintf("%s row %d: %s", l.Scaffold, l.Row+1, l.Component)
}

// Report is a pair of components sharing at least one base. A starts no later than B.
type Report struct {
	A, B Location
}

// Length is the number of shared bases.
func (r Report) Length() int { return r.A.Component.OverlapLength(r.B.Component.Interval) }

// Find groups components by sequence name, sorts each group by start then end,
// and reports each adjacent pair where the second starts at or before the end of the
// first. Groups are visited in order of first appearance. It never fails.
func Find(a *assembly.Assembly) []Report {
	groups := map[string][]Location{}
	var order []string
	for _, s := range a.Scaffolds() {
		for i, r := range s.Rows {
			c, ok := r.(assembly.Component)
			if !ok {
				continue
			}
			if _, seen := groups[c.Name()]; !seen {
				order = append(order, c.Name())
			}
			groups[c.Name()] = append(groups[c.Name()], Location{Scaffold: s.Name, Row: i, Component: c})
		}
	}

	var out []Report
	for _, name := range order {
		locs := groups[name]
		sort.SliceStable(locs, func(i, j int) bool {
			ci, cj := locs[i].Component, locs[j].Component
			if ci.Start() != cj.Start() {
				return ci.Start() < cj.Start()
			}
			return ci.End() < cj.End()
		})
		for i := 1; i < len(locs); i++ {
			if locs[i].Component.Start() <= locs[i-1].Component.End() {
				out = append(out, Report{A: locs[i-1], B: locs[i]})
			}
		}
	}
	return out
}
