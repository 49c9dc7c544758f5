// core/reproject/split.go
package reproject

import (
	"slices"
	"strings"

	"tolasm/core/assembly"
)

// Part is the slice of a Result belonging to one output set.
type Part struct {
	Set          string
	Assembly     *assembly.Assembly
	Instructions []Instruction
}

// Split divides the result by set. Haplotype sets come first in order of
// appearance, then haplotigs (sorted by name), contaminants and false
// duplicates. Each part's instructions follow its own scaffold order.
func (r *Result) Split() []Part {
	bySet := map[string]*assembly.Assembly{}
	var sets []string
	for _, s := range r.Assembly.Scaffolds() {
		set := r.groups[s.Name].Set
		a, ok := bySet[set]
		if !ok {
			name := r.Assembly.Name
			if set != "" {
				name += "_" + strings.ToLower(set)
			}
			a = assembly.New(name)
			bySet[set] = a
			if !slices.Contains(specialSets, set) {
				sets = append(sets, set)
			}
		}
		// Names are unique in r.Assembly, so this cannot fail.
		_ = a.AddScaffold(s)
	}
	for _, special := range specialSets {
		if _, ok := bySet[special]; ok {
			sets = append(sets, special)
		}
	}
	if a, ok := bySet[SetHaplotig]; ok {
		a.SortByName()
	}

	perScaffold := map[string][]Instruction{}
	for _, in := range r.Instructions {
		perScaffold[in.Scaffold] = append(perScaffold[in.Scaffold], in)
	}

	parts := make([]Part, 0, len(sets))
	for _, set := range sets {
		p := Part{Set: set, Assembly: bySet[set]}
		for _, s := range p.Assembly.Scaffolds() {
			p.Instructions = append(p.Instructions, perScaffold[s.Name]...)
		}
		parts = append(parts, p)
	}
	return parts
}

var specialSets = []string{SetHaplotig, SetContaminant, SetFalseDuplicate}

