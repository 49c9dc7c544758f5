// Package reproject maps a curated layout, expressed in the coordinates of an
// original assembly, onto a new assembly and lists the sequence extractions
// needed to build it.
package reproject

import (
	"fmt"

	"tolasm/core/assembly"
	"tolasm/core/overlap"
)

// Instruction copies Source (in original coordinates, oriented by its strand)
// to Offset (1-based) of destination Scaffold.
type Instruction struct {
	Source   assembly.Interval
	Scaffold string
	Offset   int
}

// End is the last destination base written by the instruction.
func (in Instruction) End() int { return in.Offset + in.Source.Length() - 1 }

func (in Instruction) String() string {
	return fmt.Sprintf("%s -> %s:%d-%d", in.Source, in.Scaffold, in.Offset, in.End())
}

// Options tune the reprojection.
type Options struct {
	// KnownTags are extra tags that never name a haplotype.
	KnownTags []string
	// AutosomePrefix starts painted chromosome names; DefaultAutosomePrefix when empty.
	AutosomePrefix string
}

// Result is the new layout plus the extractions in destination order.
type Result struct {
	Assembly     *assembly.Assembly
	Instructions []Instruction
	groups       map[string]Group
}

// Group returns the group of a destination scaffold.
func (r *Result) Group(scaffold string) (Group, bool) {
	g, ok := r.groups[scaffold]
	return g, ok
}

type destination struct {
	group Group
	comps []assembly.Component
}

func (d *destination) length() int {
	n := 0
	for _, c := range d.comps {
		n += c.Length()
	}
	return n
}

// Reproject builds the new layout for curated against the original sequences in u.
//
// Painted scaffolds become numbered autosomes and chromosome-tagged ones take
// the tag as their name, both behind the autosome prefix and followed by the
// haplotype. Every Haplotig piece becomes its own H_<n> and every Unloc piece
// its own <chromosome>_unloc_<n>; both are numbered longest first. Once a
// Target tag has been seen, later scaffolds without one are contaminants.
func Reproject(curated *assembly.Assembly, u *Universe, opt Options) (*Result, error) {
	if err := validate(curated, u); err != nil {
		return nil, err
	}

	cls := newClassifier(opt.KnownTags)
	if err := cls.learn(curated); err != nil {
		return nil, err
	}
	scaffolds := curated.Scaffolds()
	groups := make([]Group, len(scaffolds))
	for i, s := range scaffolds {
		g, err := cls.classify(s)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	nm := newNamer(opt.AutosomePrefix)
	if err := nm.nameScaffolds(scaffolds, groups); err != nil {
		return nil, err
	}

	var (
		order     []*destination
		haplotigs []*destination
		targets   bool
	)
	for i, s := range scaffolds {
		grp := groups[i]
		tags := s.Tags()
		if tags.Has(assembly.TagTarget) {
			targets = true
		}
		untargeted := targets && !tags.Has(assembly.TagTarget)

		var (
			main   *destination
			unlocs []*destination
			unlocN int
		)
		for _, c := range s.Components() {
			if u.IsCut(c.Interval) {
				c.Tags = c.Tags.With(assembly.TagCut)
			}
			switch {
			case c.Tags.Has(assembly.TagHaplotig):
				g := grp
				g.Scaffold = nm.haplotig(s.Name)
				g.Set, g.Rank, g.Chromosome = SetHaplotig, RankUnplaced, ""
				haplotigs = append(haplotigs, &destination{group: g, comps: []assembly.Component{c}})
			case c.Tags.Has(assembly.TagUnloc):
				if !grp.Painted {
					return nil, &TaggingError{Scaffold: s.Name, Tags: []string{assembly.TagUnloc},
						Reason: fmt.Sprintf("Unloc %s in unpainted scaffold", c.Interval)}
				}
				g := grp
				g.Scaffold = nm.fresh(grp.Scaffold+"_unloc_%d", &unlocN, s.Name)
				g.Unloc = true
				unlocs = append(unlocs, &destination{group: g, comps: []assembly.Component{c}})
			default:
				if main == nil {
					main = &destination{group: grp}
				}
				main.comps = append(main.comps, c)
			}
		}
		renameBySize(unlocs)
		for _, d := range append([]*destination{main}, unlocs...) {
			if d == nil {
				continue
			}
			switch {
			case untargeted || allTagged(d.comps, assembly.TagContaminant):
				d.group.Set, d.group.Rank = SetContaminant, RankUnplaced
			case allTagged(d.comps, assembly.TagFalseDuplicate):
				d.group.Set, d.group.Rank = SetFalseDuplicate, RankUnplaced
			}
			order = append(order, d)
		}
	}
	renameBySize(haplotigs)
	order = append(order, haplotigs...)

	res := &Result{
		Assembly: assembly.New(curated.Name),
		groups:   make(map[string]Group, len(order)),
	}
	for _, d := range order {
		scf := assembly.NewScaffold(d.group.Scaffold)
		offset := 1
		for i, c := range d.comps {
			if i > 0 {
				gap := assembly.DefaultGap()
				scf.AddRow(gap)
				offset += gap.Length
			}
			scf.AddRow(c)
			res.Instructions = append(res.Instructions, Instruction{
				Source:   c.Interval,
				Scaffold: scf.Name,
				Offset:   offset,
			})
			offset += c.Length()
		}
		if err := res.Assembly.AddScaffold(scf); err != nil {
			return nil, err
		}
		res.groups[scf.Name] = d.group
	}
	return res, nil
}

func allTagged(comps []assembly.Component, tag string) bool {
	for _, c := range comps {
		if !c.Tags.Has(tag) {
			return false
		}
	}
	return len(comps) > 0
}

// validate checks bounds and names of every curated component, then that no two
// components draw on the same original bases.
func validate(curated *assembly.Assembly, u *Universe) error {
	for _, s := range curated.Scaffolds() {
		for i, r := range s.Rows {
			c, ok := r.(assembly.Component)
			if !ok {
				continue
			}
			length, known := u.Length(c.Name())
			if !known {
				return &UnknownSequenceError{Scaffold: s.Name, Row: i + 1, Interval: c.Interval}
			}
			if c.End() > length {
				return &CoordinateRangeError{Scaffold: s.Name, Row: i + 1, Interval: c.Interval, Length: length}
			}
		}
	}
	if reports := overlap.Find(curated); len(reports) > 0 {
		r := reports[0]
		return &DuplicateFragmentError{
			Scaffold: r.B.Scaffold, Row: r.B.Row + 1, Interval: r.B.Component.Interval,
			OtherScaffold: r.A.Scaffold, OtherRow: r.A.Row + 1, Other: r.A.Component.Interval,
		}
	}
	return nil
}
